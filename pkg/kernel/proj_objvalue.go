package kernel

import "strings"

type Email string

func NewEmail(e string) Email  { return Email(strings.ToLower(strings.TrimSpace(e))) }
func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

// IsValid does a shape check only; real verification belongs to the
// identity provider.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}

type Phone string

func NewPhone(p string) Phone  { return Phone(p) }
func (p Phone) String() string { return string(p) }
func (p Phone) IsEmpty() bool  { return string(p) == "" }

type DisplayName string

func (n DisplayName) String() string { return string(n) }
func (n DisplayName) IsEmpty() bool  { return string(n) == "" }

type JobTitle string

type JobSector string

type JobLocation string

type ResumeURL string

func (u ResumeURL) String() string { return string(u) }
func (u ResumeURL) IsEmpty() bool  { return string(u) == "" }

type BucketURL string
