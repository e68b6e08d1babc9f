package avs

import "math"

// interfaceVersion25 is the ABI revision requested when creating the
// throwaway environment, AVS_INTERFACE_25 in the engine's C header.
const interfaceVersion25 = 2

// MinimumVersion is the lowest engine version this tool accepts.
const MinimumVersion = 2.5

// versionFunction is the script function queried inside the
// environment.
const versionFunction = "VersionNumber"

// probeVersion creates a transient script environment, asks it for the
// engine version, and tears the environment down again. It returns NaN
// whenever the version could not be determined: environment creation
// refused, the query function missing, or the invocation yielding an
// error-tagged or non-numeric value. A refused environment is not
// fatal; the caller folds it into the undetermined outcome.
func probeVersion(ep *EntryPoints) float64 {
	version := math.NaN()

	env := ep.CreateScriptEnvironment(interfaceVersion25)
	if env == 0 {
		return version
	}
	// Once created the environment is destroyed on every return path.
	defer ep.DeleteScriptEnvironment(env)

	if ep.FunctionExists(env, versionFunction) == 0 {
		return version
	}

	result := ep.Invoke(env, versionFunction, emptyArgs(), 0)
	if result.IsError() || !result.IsFloat() {
		return version
	}

	version = result.Float()
	// Resolution already guaranteed the release entry point, but the
	// probe still treats it as optional.
	if ep.ReleaseValue != nil {
		ep.ReleaseValue(result)
	}
	return version
}

// versionAccepted reports whether a probed version counts as success: a
// real number at or above the minimum.
func versionAccepted(version float64) bool {
	return !math.IsNaN(version) && version >= MinimumVersion
}
