package common

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputSplitterWritesAllBytes(t *testing.T) {
	splitter := &OutputSplitter{}

	message := []byte(`time="2024-01-15T10:30:00Z" level=info msg="service started"` + "\n")
	n, err := splitter.Write(message)
	require.NoError(t, err)
	assert.Equal(t, len(message), n)

	errorMessage := []byte(`time="2024-01-15T10:30:00Z" level=error msg="request failed"` + "\n")
	n, err = splitter.Write(errorMessage)
	require.NoError(t, err)
	assert.Equal(t, len(errorMessage), n)
}

func TestGlobalLoggerIsConfigured(t *testing.T) {
	require.NotNil(t, Logger)
	assert.IsType(t, &OutputSplitter{}, Logger.Out)
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
}
