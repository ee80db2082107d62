package core

import "time"

// Identity is the {id, username, role} triple asserted by a verified token.
type Identity struct {
	ID       uint
	Username string
	Role     string
}

type AuthMessage struct {
	Username string
	Password string
}

type PostMessage struct {
	Title     string
	Content   string
	ImagePath string
}

type PostRecord struct {
	ID        uint
	Title     string
	Content   string
	ImagePath string
	CreatedAt time.Time
}
