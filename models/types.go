package models

// Request types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsPublished bool   `json:"is_published"`
}

type SendOTPRequest struct {
	Phone string `json:"phone"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type VoterFormRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type SubmitCodeRequest struct {
	Code string `json:"code"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

type SendOTPResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

type VerifyOTPResponse struct {
	Success bool   `json:"success"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

type StartVoteResponse struct {
	SessionID string `json:"session_id"`
	Step      string `json:"step"`
}

type VoteStepResponse struct {
	SessionID string `json:"session_id"`
	Step      string `json:"step"`
	Phone     string `json:"phone,omitempty"`
}

type VoteRecordedResponse struct {
	VoteID string `json:"vote_id"`
	Step   string `json:"step"`
}

type DeleteItemResponse struct {
	DeletedVotes int64 `json:"deleted_votes"`
}

type ReportResponse struct {
	TotalVotes    int `json:"total_votes"`
	VerifiedVotes int `json:"verified_votes"`
	PendingVotes  int `json:"pending_votes"`
	ItemsCount    int `json:"items_count"`
}

// Domain types

type VotingItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsPublished bool   `json:"is_published"`
	CreatedAt   int64  `json:"created_at"` // epoch milliseconds
}

// ItemUpdate carries a partial set of item fields. Only non-nil
// fields are written by the store.
type ItemUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

type Vote struct {
	ID         string `json:"id"`
	ItemID     string `json:"item_id"`
	VoterName  string `json:"voter_name"`
	VoterEmail string `json:"voter_email"`
	VoterPhone string `json:"voter_phone"` // normalized international format
	IsVerified bool   `json:"is_verified"`
	CreatedAt  int64  `json:"created_at"` // epoch milliseconds
}

// Error response

type ErrorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message,omitempty"`
	LoginURL string `json:"login_url,omitempty"`
}
