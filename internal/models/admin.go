package models

// AdminLoginRequest represents the request body for the admin login endpoint
type AdminLoginRequest struct {
	AdminID string `json:"adminId" binding:"required"`
}

// AdminSession is the result of bootstrapping an admin: the canonical admin
// name, the chat credential minted for it, and the public chat API key the
// browser needs to open its own session
type AdminSession struct {
	AdminName    string `json:"adminName"`
	Token        string `json:"token"`
	StreamAPIKey string `json:"streamApiKey"`
}

// ReminderRequest represents the request body for a direct one-off SMS send
type ReminderRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	MessageText string `json:"messageText" binding:"required"`
}
