package domain

// Activity describes one extracurricular activity and its current roster.
// Participants is an insertion-ordered set of student emails; its length
// never exceeds MaxParticipants.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}
