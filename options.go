package font_changer

type ApplyOption func(o *options)

func WithDebug() ApplyOption {
	return func(o *options) {
		o.debug = true
	}
}

func WithProd() ApplyOption {
	return func(o *options) {
		o.debug = false
	}
}

// WithUpdateCheck toggles the GitHub release check at startup.
func WithUpdateCheck(enabled bool) ApplyOption {
	return func(o *options) {
		o.checkUpdate = enabled
	}
}
