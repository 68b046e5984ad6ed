package model

// AlternativesRequest asks the language model for other ways to write a
// piece of code.
type AlternativesRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// Alternative is one suggested rewrite, ranked from best (1) down.
type Alternative struct {
	Rank int    `json:"rank"`
	Code string `json:"code"`
}

// AlternativesResult is the model's verdict: an efficiency rating from 1
// (worst) to 10 (best) plus ranked alternative implementations.
type AlternativesResult struct {
	Rating       int           `json:"rating"`
	Alternatives []Alternative `json:"alternatives"`
}
