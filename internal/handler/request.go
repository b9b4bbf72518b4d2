package handler

// SignupRequest represents request body for POST /signup.
// Field validation happens in the auth service, not in binding tags,
// so the contract's validation messages are returned verbatim.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
	EmailID   string `json:"emailId"`
	Password  string `json:"password"`
}

// LoginRequest represents request body for POST /login.
type LoginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateTeamRequest represents request body for POST /teams/create.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// MemberRequest represents request bodies carrying a target userName
// (addMember and remove).
type MemberRequest struct {
	UserName string `json:"userName" binding:"required"`
}
