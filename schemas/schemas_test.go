package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{CV, ATSAnalysis, JobNormalized}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := FS.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := FS.ReadFile(schemaFile)
			require.NoError(t, err)

			_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err, "schema should compile: %s", schemaFile)
		})
	}
}
