package main

const ownerStateKey = "owner"

// Init records the marketplace owner. Runs once; repeated calls abort.
//
//go:wasmexport init
func Init(payload *string) *string {
	return initImpl(payload, sdkInterface)
}

func initImpl(payload *string, f SDKInterface) *string {
	if f.Get(ownerStateKey) != nil {
		f.Abort(errAlreadyInitialized)
	}
	input := FromJSON[InitArgs](f, *payload, "init args")
	if input.OwnerId == "" {
		f.Abort(errOwnerMandatory)
	}
	f.Set(ownerStateKey, input.OwnerId.String())
	return nil
}
