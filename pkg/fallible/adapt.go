package fallible

// LiftCall invokes call and returns its result as a present Optional.
// A returned failure, or any panic raised by call, yields Empty and the
// failure is discarded.
func LiftCall[R any, E error](call func() (R, E)) (out Optional[R]) {
	defer func() {
		if r := recover(); r != nil {
			out = Empty[R]()
		}
	}()

	res, err := call()
	if Failed(err) {
		return Empty[R]()
	}
	return Of(res)
}

// UncheckedCall invokes call and returns its result. A returned failure
// is raised as a panic with a *WrappedError whose cause is the failure.
// Panics raised by call propagate unchanged.
func UncheckedCall[R any, E error](call func() (R, E)) R {
	res, err := call()
	if Failed(err) {
		panic(Wrap(err))
	}
	return res
}

// SneakyCall invokes call and returns its result. A returned failure is
// raised as a panic with the failure value itself, so recover yields the
// identical value with no wrapper.
func SneakyCall[R any, E error](call func() (R, E)) R {
	res, err := call()
	if Failed(err) {
		panic(err)
	}
	return res
}

// TryCall invokes call and keeps its outcome as a Result. A panic is
// captured as a failure: an error value as is, any other value as a
// *PanicError.
func TryCall[R any, E error](call func() (R, E)) (out Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			out = Fail[R](asError(r))
		}
	}()

	res, err := call()
	if Failed(err) {
		return Fail[R](err)
	}
	return Success(res)
}

// LiftRun is LiftCall for functions without a result. It reports whether
// run succeeded.
func LiftRun[E error](run func() E) bool {
	return LiftCall(unit(run)).IsPresent()
}

// UncheckedRun is UncheckedCall for functions without a result.
func UncheckedRun[E error](run func() E) {
	UncheckedCall(unit(run))
}

// SneakyRun is SneakyCall for functions without a result.
func SneakyRun[E error](run func() E) {
	SneakyCall(unit(run))
}

func unit[E error](run func() E) func() (struct{}, E) {
	return func() (struct{}, E) {
		return struct{}{}, run()
	}
}
