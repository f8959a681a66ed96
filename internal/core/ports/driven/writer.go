package driven

// DocumentWriter delivers an encoded export to a file.
type DocumentWriter interface {
	// Write stores data at path, replacing any existing file.
	// Failures are reported as *domain.WriteError.
	Write(path string, data []byte) error
}
