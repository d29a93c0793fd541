package sign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalJSON_EmptyForms(t *testing.T) {

	out, err := CanonicalJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = CanonicalJSON(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestCanonicalJSON_SortsKeys(t *testing.T) {

	out, err := CanonicalJSON(map[string]any{
		"zeta":  1,
		"alpha": "a",
		"mid":   true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"a","mid":true,"zeta":1}`, out)
}

func TestCanonicalJSON_SortsNestedKeys(t *testing.T) {

	out, err := CanonicalJSON(map[string]any{
		"b": map[string]any{"y": 2, "x": 1},
		"a": []any{map[string]any{"k2": "v", "k1": nil}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":[{"k1":null,"k2":"v"}],"b":{"x":1,"y":2}}`, out)
}

func TestCanonicalJSON_InsertionOrderIrrelevant(t *testing.T) {

	first := map[string]any{}
	first["currency"] = "EUR"
	first["owner_pid"] = "priv_1"
	first["owner_kind"] = "PRIVATE"

	second := map[string]any{}
	second["owner_kind"] = "PRIVATE"
	second["owner_pid"] = "priv_1"
	second["currency"] = "EUR"

	a, err := CanonicalJSON(first)
	require.NoError(t, err)
	b, err := CanonicalJSON(second)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCanonicalJSON_StructAndMapAgree(t *testing.T) {

	type req struct {
		Currency  string `json:"currency"`
		OwnerKind string `json:"owner_kind"`
		OwnerPid  string `json:"owner_pid"`
	}

	fromStruct, err := CanonicalJSON(req{Currency: "EUR", OwnerKind: "PRIVATE", OwnerPid: "priv_1"})
	require.NoError(t, err)

	fromMap, err := CanonicalJSON(map[string]any{
		"owner_pid":  "priv_1",
		"currency":   "EUR",
		"owner_kind": "PRIVATE",
	})
	require.NoError(t, err)

	assert.Equal(t, fromMap, fromStruct)
}

func TestCanonicalJSON_NumberFormattingStable(t *testing.T) {

	a, err := CanonicalJSON(map[string]any{"amount": int64(1234)})
	require.NoError(t, err)
	b, err := CanonicalJSON(map[string]any{"amount": 1234})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, `{"amount":1234}`, a)
}
