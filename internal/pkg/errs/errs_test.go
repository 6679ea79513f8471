package errs_test

import (
	"errors"
	"testing"

	"linkmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "7e3a")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "7e3a", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7e3a", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "7e3a", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 7e3a (cause: record not found)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("serviceType")

		assert.Equal(t, "serviceType", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: serviceType", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown enum value")
		err := errs.NewValueIsInvalidErrorWithCause("serviceType", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: serviceType (cause: unknown enum value)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("rejectionReason")

		assert.Equal(t, "rejectionReason", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: rejectionReason", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank after trimming")
		err := errs.NewValueIsRequiredErrorWithCause("rejectionReason", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: rejectionReason (cause: blank after trimming)", err.Error())
	})
}

func TestActorForbiddenError(t *testing.T) {
	t.Run("NewActorForbiddenError", func(t *testing.T) {
		err := errs.NewActorForbiddenError("a1b2", "publisher")

		assert.Equal(t, "a1b2", err.ActorID)
		assert.Equal(t, "publisher", err.RequiredRole)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"actor is not allowed to perform this action: actor is: a1b2, required role is: publisher",
			err.Error())
		assert.Equal(t, errs.ErrActorForbidden, err.Unwrap())
	})

	t.Run("NewActorForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("actor is not a party on the order")
		err := errs.NewActorForbiddenErrorWithCause("a1b2", "advertiser", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "required role is: advertiser")
		assert.Contains(t, err.Error(), "cause: actor is not a party on the order")
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("completed", "inProgress")

		assert.Equal(t, "completed", err.From)
		assert.Equal(t, "inProgress", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "status transition is not allowed: from completed to inProgress", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal state")
		err := errs.NewInvalidTransitionErrorWithCause("rejected", "completed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"status transition is not allowed: from rejected to completed (cause: terminal state)",
			err.Error())
	})
}

func TestVersionConflictError(t *testing.T) {
	t.Run("NewVersionConflictError", func(t *testing.T) {
		err := errs.NewVersionConflictError("order", "7e3a")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "7e3a", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object was modified concurrently: param is: order, ID is: 7e3a", err.Error())
		assert.Equal(t, errs.ErrVersionConflict, err.Unwrap())
	})

	t.Run("NewVersionConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 rows affected")
		err := errs.NewVersionConflictErrorWithCause("order", "7e3a", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "cause: 0 rows affected")
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrActorForbidden)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrVersionConflict)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "actor is not allowed to perform this action", errs.ErrActorForbidden.Error())
		assert.Equal(t, "status transition is not allowed", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "object was modified concurrently", errs.ErrVersionConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "7e3a"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("rejectionReason"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewActorForbiddenError("a1b2", "publisher"), errs.ErrActorForbidden)
		require.ErrorIs(t, errs.NewInvalidTransitionError("requested", "completed"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewVersionConflictError("order", "7e3a"), errs.ErrVersionConflict)
	})

	t.Run("errors.As extracts transition diagnostics", func(t *testing.T) {
		var transitionErr *errs.InvalidTransitionError
		err := errs.NewInvalidTransitionError("requested", "completed")

		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "requested", transitionErr.From)
		assert.Equal(t, "completed", transitionErr.To)
	})

	t.Run("sanitize flattens newlines in IDs", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "bad\nid")
		assert.Contains(t, err.Error(), "bad id")
		assert.NotContains(t, err.Error(), "\n")
	})
}
