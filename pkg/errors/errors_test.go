package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_TraceChain(t *testing.T) {
	base := New("logic.create", "error.internal", fmt.Errorf("db down"))
	traced := Trace("handler.create", base)

	assert.Equal(t, http.StatusInternalServerError, traced.GetCode())
	assert.Contains(t, traced.Error(), "logic.create->handler.create")
}

func Test_CodeKeptThroughWrap(t *testing.T) {
	notFound := New("store.get", "error.notfound", nil).Code(http.StatusNotFound)
	wrapped := Wrap(notFound, "logic.get", "error.notfound")

	assert.Equal(t, http.StatusNotFound, wrapped.GetCode())
	assert.Equal(t, "error.notfound", wrapped.Message())
}

func Test_TracePlainError(t *testing.T) {
	err := Trace("middleware.auth", fmt.Errorf("token expired"))
	assert.Equal(t, "token expired", err.Message())
}
