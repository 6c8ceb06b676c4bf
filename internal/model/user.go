package model

// Staff role value used by the backend profile endpoint.  Any other role
// value is treated as a regular customer.
const RoleStaff = 2

// User is the profile returned by the backend after authentication.  The
// client never stores credentials; it only keeps the backend token and the
// derived role for the lifetime of the session.
//
// Fields:
//  ID          – backend user identifier.
//  FullName    – display name.
//  Email       – login email.
//  PhoneNumber – optional contact number.
//  Role        – numeric role from the backend (2 = staff).
type User struct {
	ID          uint64 `json:"id"`
	FullName    string `json:"fullname,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        int    `json:"role"`
}

// RoleName maps the backend's numeric role onto the role strings carried in
// the session token and enforced by the role middleware.
func (u User) RoleName() string {
	if u.Role == RoleStaff {
		return "STAFF"
	}
	return "CUSTOMER"
}
