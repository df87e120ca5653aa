package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

// ExternalUID is the opaque identifier issued by the external identity
// provider. It is the join key between a bearer token and a local user record.
type ExternalUID string

func NewExternalUID(id string) ExternalUID { return ExternalUID(id) }
func (u ExternalUID) String() string       { return string(u) }
func (u ExternalUID) IsEmpty() bool        { return string(u) == "" }

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }
