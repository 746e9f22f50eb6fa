package secureprop

import (
	"context"
	"testing"

	"github.com/shandysiswandi/secureprop/internal/pkg/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"golang.org/x/crypto/bcrypt"
)

func TestProps(t *testing.T) {
	password := newPasswordDef(t)
	pin, err := Define("pin", hash.NewArgon2id(""), WithMinCost(true), WithMaxLength(6))
	require.NoError(t, err)

	var p Props
	assert.Nil(t, p.Validate())
	assert.False(t, p.Authenticate("password", "x"))

	p.Attach(password.New(), pin.New(), nil)
	assert.Equal(t, []string{"password", "pin"}, p.Names())
	assert.False(t, p.Dirty())

	err = p.Validate()
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("password", KindBlank))
	assert.True(t, errs.Has("pin", KindBlank))

	pw, ok := p.Field("password")
	require.True(t, ok)
	require.NoError(t, pw.Set("mUc3m00RsqyRe"))
	pf, ok := p.Field("pin")
	require.True(t, ok)
	require.NoError(t, pf.Set("1234"))

	assert.NoError(t, p.Validate())
	assert.True(t, p.Dirty())
	assert.True(t, p.Authenticate("password", "mUc3m00RsqyRe"))
	assert.True(t, p.Authenticate("pin", "1234"))
	assert.False(t, p.Authenticate("pin", "mUc3m00RsqyRe"))
	assert.False(t, p.Authenticate("token", "1234"))

	_, err = p.Compare("token", "1234")
	assert.ErrorIs(t, err, ErrUnknownProperty)

	// re-attaching replaces the field but keeps its position
	p.Attach(password.New())
	assert.Equal(t, []string{"password", "pin"}, p.Names())
	assert.False(t, p.Authenticate("password", "mUc3m00RsqyRe"))
}

func TestDefine_WithMeter(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	def, err := Define("password", hash.NewBcrypt(bcrypt.MinCost, ""), WithMeter(mp.Meter("secureprop")))
	require.NoError(t, err)

	f := def.New()
	require.NoError(t, f.Set("secret"))
	require.NoError(t, f.Set("again"))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	assert.Equal(t, "secureprop.hash.duration", m.Name)

	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
}
