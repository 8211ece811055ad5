package ports

// ExecutableLocator defines the contract for finding the absolute path of the running executable.
type ExecutableLocator interface {
	Locate() (string, error)
}
