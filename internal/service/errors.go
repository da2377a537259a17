package service

import "fmt"

type fetchError struct {
	err error
}

func (f fetchError) Error() string {
	return fmt.Sprintf("fetch error: %s", f.err)
}

func (f fetchError) Cause() error {
	return f.err
}

func (f fetchError) Unwrap() error {
	return f.err
}

// FetchFailed marks err as a forecast-provider failure.
func FetchFailed(err error) error {
	if err == nil {
		return nil
	}

	return fetchError{err: err}
}

type sendError struct {
	err error
}

func (s sendError) Error() string {
	return fmt.Sprintf("send error: %s", s.err)
}

func (s sendError) Cause() error {
	return s.err
}

func (s sendError) Unwrap() error {
	return s.err
}

// SendFailed marks err as an email-provider failure.
func SendFailed(err error) error {
	if err == nil {
		return nil
	}

	return sendError{err: err}
}

func IsFetchError(err error) bool {
	return inChain(err, func(err error) bool {
		_, ok := err.(fetchError)
		return ok
	})
}

func IsSendError(err error) bool {
	return inChain(err, func(err error) bool {
		_, ok := err.(sendError)
		return ok
	})
}

func inChain(err error, match func(error) bool) bool {
	type causer interface {
		Cause() error
	}

	for {
		if err == nil {
			return false
		}

		if match(err) {
			return true
		}

		causeErr, ok := err.(causer)
		if !ok {
			return false
		}

		err = causeErr.Cause()
	}
}
