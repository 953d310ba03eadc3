package fallible

// Then calls onSuccess with a successful value and converts its
// (Out, error) return into a Result. A failed input is carried over and
// onSuccess is not called.
func Then[In, Out any](input Result[In], onSuccess func(r In) (Out, error)) Result[Out] {
	if !input.IsSuccess() {
		return FailFrom[In, Out](input)
	}

	out, err := onSuccess(input.Result())
	if Failed(err) {
		return Fail[Out](err)
	}

	return Success(out)
}

// Map transforms a successful value.
func Map[In, Out any](input Result[In], onSuccess func(r In) Out) Result[Out] {
	if !input.IsSuccess() {
		return FailFrom[In, Out](input)
	}
	return Success(onSuccess(input.Result()))
}

// Finally collapses an outcome into a concrete value.
func Finally[In, Out any](input WithError[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}
