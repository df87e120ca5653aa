package kernel

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (r JobID) String() string { return string(r) }
func (r JobID) IsEmpty() bool  { return string(r) == "" }

// SlotApplicationID identifies a public interview-slot application,
// a distinct entity from a job ApplicationID.
type SlotApplicationID string

func NewSlotApplicationID(id string) SlotApplicationID { return SlotApplicationID(id) }
func (r SlotApplicationID) String() string             { return string(r) }
func (r SlotApplicationID) IsEmpty() bool              { return string(r) == "" }

type ShortlistID string

func NewShortlistID(id string) ShortlistID { return ShortlistID(id) }
func (r ShortlistID) String() string       { return string(r) }
func (r ShortlistID) IsEmpty() bool        { return string(r) == "" }

type InterviewID string

func NewInterviewID(id string) InterviewID { return InterviewID(id) }
func (r InterviewID) String() string       { return string(r) }
func (r InterviewID) IsEmpty() bool        { return string(r) == "" }

type ReviewID string

func NewReviewID(id string) ReviewID { return ReviewID(id) }
func (r ReviewID) String() string    { return string(r) }
func (r ReviewID) IsEmpty() bool     { return string(r) == "" }

type RoomID string

func NewRoomID(id string) RoomID { return RoomID(id) }
func (r RoomID) String() string  { return string(r) }
func (r RoomID) IsEmpty() bool   { return string(r) == "" }
