package api

// Request and response payloads for the HTTP surface. JSON field names follow
// the published wire contract, including its mixed naming styles.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint. Fields are
// not validated up front: an empty username falls through to the lookup and
// fails the same way an unknown one does.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse defines the successful login response.
type TokenResponse struct {
	Token string `json:"token"`
}

// MeResponse defines the response for the authenticated-identity endpoint.
type MeResponse struct {
	Username string `json:"username"`
}

// BookRequest defines the payload for book create and update endpoints.
type BookRequest struct {
	BookTitle string `json:"bookTitle"`
	Author    string `json:"author"`
	NoOfPages int    `json:"noOfPages"`
	ShelfID   string `json:"shelfid"`
}

// ShelfRequest defines the payload for shelf create and update endpoints.
type ShelfRequest struct {
	ShelfName string `json:"shelfName"`
	Capacity  int    `json:"capacity"`
}
