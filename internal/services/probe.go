package services

import (
	"fmt"
	"location-registry-service/internal/ports"
	"log"
)

// ChallengeContainerID is the element id the probe mounts its throwaway
// CAPTCHA widget into.
const ChallengeContainerID = "auth-probe-challenge"

// ProbeAuth reports whether the authentication SDK is usable: at least one
// initialized app, an obtainable auth handle, and a CAPTCHA widget that can
// be built and torn down. Every failure, including a panic inside the SDK,
// is logged and turned into false.
func ProbeAuth(sdk ports.AuthSDK) bool {
	if sdk == nil {
		log.Println("auth probe: sdk is nil")
		return false
	}

	apps, err := probeApps(sdk)
	if err != nil {
		log.Printf("auth probe: sdk apps: %v", err)
		return false
	}
	log.Printf("auth probe: apps=%d default=%s", len(apps), apps[0].Name)

	handle, err := probeAuthHandle(sdk)
	if err != nil {
		log.Printf("auth probe: auth handle: %v", err)
		return false
	}
	log.Printf("auth probe: auth handle app=%s", handle.AppName())

	if err := probeChallenge(sdk); err != nil {
		log.Printf("auth probe: challenge widget: %v", err)
		return false
	}
	log.Println("auth probe: challenge widget ok")

	return true
}

func probeApps(sdk ports.AuthSDK) (apps []ports.App, err error) {
	defer recoverInto(&err)

	apps = sdk.InitializedApps()
	if len(apps) == 0 {
		return nil, fmt.Errorf("no initialized apps")
	}
	return apps, nil
}

func probeAuthHandle(sdk ports.AuthSDK) (handle ports.AuthHandle, err error) {
	defer recoverInto(&err)

	handle, err = sdk.AuthHandle()
	if err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, fmt.Errorf("sdk returned nil handle")
	}
	return handle, nil
}

func probeChallenge(sdk ports.AuthSDK) (err error) {
	defer recoverInto(&err)

	w, err := sdk.NewChallengeWidget(ChallengeContainerID)
	if err != nil {
		return fmt.Errorf("construct: %w", err)
	}
	if w == nil {
		return fmt.Errorf("construct: sdk returned nil widget")
	}
	if err := w.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

func recoverInto(errp *error) {
	if r := recover(); r != nil {
		*errp = fmt.Errorf("panic: %v", r)
	}
}
