package api

import "errors"

// errEmptyAuthResponse is wrapped in a NetworkError when login/signup succeed with no body
var errEmptyAuthResponse = errors.New("empty authentication response")
