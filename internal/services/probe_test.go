package services

import (
	"errors"
	"location-registry-service/internal/ports"
	"testing"
)

type fakeHandle struct{}

func (fakeHandle) AppName() string { return "[DEFAULT]" }

type fakeWidget struct {
	clearErr error
	cleared  *bool
}

func (w fakeWidget) Clear() error {
	if w.cleared != nil {
		*w.cleared = true
	}
	return w.clearErr
}

type fakeSDK struct {
	apps       []ports.App
	handleErr  error
	widgetErr  error
	clearErr   error
	panicAt    string
	cleared    bool
	widgetCall string
}

func (f *fakeSDK) InitializedApps() []ports.App {
	if f.panicAt == "apps" {
		panic("apps exploded")
	}
	return f.apps
}

func (f *fakeSDK) AuthHandle() (ports.AuthHandle, error) {
	if f.panicAt == "handle" {
		panic("handle exploded")
	}
	if f.handleErr != nil {
		return nil, f.handleErr
	}
	return fakeHandle{}, nil
}

func (f *fakeSDK) NewChallengeWidget(containerID string) (ports.ChallengeWidget, error) {
	f.widgetCall = containerID
	if f.panicAt == "widget" {
		panic("widget exploded")
	}
	if f.widgetErr != nil {
		return nil, f.widgetErr
	}
	return fakeWidget{clearErr: f.clearErr, cleared: &f.cleared}, nil
}

func healthySDK() *fakeSDK {
	return &fakeSDK{apps: []ports.App{{Name: "[DEFAULT]", ProjectID: "demo"}}}
}

func TestProbeAuthHealthy(t *testing.T) {
	sdk := healthySDK()

	if !ProbeAuth(sdk) {
		t.Fatalf("ProbeAuth() = false, want true")
	}
	if !sdk.cleared {
		t.Fatalf("challenge widget was not cleared")
	}
	if sdk.widgetCall != ChallengeContainerID {
		t.Fatalf("container id = %q, want %q", sdk.widgetCall, ChallengeContainerID)
	}
}

func TestProbeAuthFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*fakeSDK)
	}{
		{name: "no apps", mutate: func(f *fakeSDK) { f.apps = nil }},
		{name: "apps panic", mutate: func(f *fakeSDK) { f.panicAt = "apps" }},
		{name: "handle error", mutate: func(f *fakeSDK) { f.handleErr = errors.New("no auth") }},
		{name: "handle panic", mutate: func(f *fakeSDK) { f.panicAt = "handle" }},
		{name: "widget error", mutate: func(f *fakeSDK) { f.widgetErr = errors.New("no site key") }},
		{name: "widget panic", mutate: func(f *fakeSDK) { f.panicAt = "widget" }},
		{name: "clear error", mutate: func(f *fakeSDK) { f.clearErr = errors.New("already cleared") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sdk := healthySDK()
			tc.mutate(sdk)

			if ProbeAuth(sdk) {
				t.Fatalf("ProbeAuth() = true, want false")
			}
		})
	}
}

func TestProbeAuthNilSDK(t *testing.T) {
	if ProbeAuth(nil) {
		t.Fatalf("ProbeAuth(nil) = true, want false")
	}
}
