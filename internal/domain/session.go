package domain

// Exchange holds the last tutor reply for a user, kept so the follow-up
// Listen and Save actions can refer back to it. One per active user,
// overwritten on each new generation.
type Exchange struct {
	Input string
	Reply string
}
