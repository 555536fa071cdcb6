package title

// Title is the persisted shape of a reviewable creative work. The
// derived rating and the resolved genre/category objects live on the
// read model (TitleResponse), never in storage.
type Title struct {
	ID          int64
	Name        string
	Year        int
	Description *string
	CategoryID  *int64
}
