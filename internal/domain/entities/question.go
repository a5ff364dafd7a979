package entities

// Question belongs to exactly one contest. Immutable once created.
type Question struct {
	ID        uint
	ContestID uint
	Prompt    string
	Answer    string
	Points    int
}
