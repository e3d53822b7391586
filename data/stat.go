package data

// FileStat reports the existence and kind of a single path. The zero value
// means the path does not exist; absence is never an error.
type FileStat struct {
	Exists      bool `json:"exists"`
	IsDirectory bool `json:"is_directory"`
}
