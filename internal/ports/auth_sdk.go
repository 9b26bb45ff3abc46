package ports

// App is an initialized authentication SDK application instance.
type App struct {
	Name      string
	ProjectID string
}

// AuthHandle is an auth session handle obtained from the SDK.
type AuthHandle interface {
	AppName() string
}

// ChallengeWidget is a CAPTCHA challenge constructed by the SDK.
type ChallengeWidget interface {
	// Tear the widget down.
	Clear() error
}

// Capabilities the diagnostic probe needs from an authentication SDK.
type AuthSDK interface {
	InitializedApps() []App
	AuthHandle() (AuthHandle, error)
	NewChallengeWidget(containerID string) (ChallengeWidget, error)
}
