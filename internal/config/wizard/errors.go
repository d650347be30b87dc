package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errProjectNameRequired = errors.New("project name is required")
	errProjectNameInvalid  = errors.New("project name must be 1-32 lowercase alphanumeric characters or hyphens, starting and ending with alphanumeric")
	errServiceNameRequired = errors.New("service name is required")
	errImageRequired       = errors.New("container image is required")
	errPortInvalid         = errors.New("port must be a number between 1 and 65535")
	errReplicasInvalid     = errors.New("replicas must be a positive number")
	errOwnerRequired       = errors.New("repository owner is required")
	errRepoRequired        = errors.New("repository name is required")
	errTokenRequired       = errors.New("access token is required")
)
