package models

// DoubtRequest is the payload sent to the doubt chatbot endpoint.
type DoubtRequest struct {
	Question string `json:"ques"`
}

// DoubtResponse is the chatbot reply.
type DoubtResponse struct {
	Answer string `json:"answer"`
}
