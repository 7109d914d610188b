package cli

// Context carries shared dependencies into command Run methods.
type Context struct {
	Debug bool
}
