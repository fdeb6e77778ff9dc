package translate_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velocitia/prospectsdata/pkg/errcode"
	"github.com/velocitia/prospectsdata/pkg/translate"
)

var data = map[string]string{
	"برج خليفة":   "Burj Khalifa",
	"دبي مارينا":  "Dubai Marina",
	"نخلة جميرا":  "Palm Jumeirah",
	"قيد الترجمة": "",
}

func TestTranslate(t *testing.T) {
	st := translate.NewStore(data)
	tests := []struct {
		msg string
		inp string
		res string
		ok  bool
	}{
		{"empty", "", "", true},
		{"latin passthrough", "Marina Heights", "Marina Heights", true},
		{"exact", "برج خليفة", "Burj Khalifa", true},
		{"trimmed", "  دبي مارينا ", "Dubai Marina", true},
		{"normalized whitespace", "نخلة   جميرا", "Palm Jumeirah", true},
		{"miss", "برج العرب", "", false},
		{"empty translation is a miss", "قيد الترجمة", "", false},
	}

	for _, v := range tests {
		res, ok := st.Translate(v.inp)
		assert.Equal(t, v.res, res, v.msg)
		assert.Equal(t, v.ok, ok, v.msg)
	}
}

func TestTranslateNilStore(t *testing.T) {
	var st *translate.Store
	res, ok := st.Translate("Marina")
	assert.True(t, ok)
	assert.Equal(t, "Marina", res)

	_, ok = st.Translate("برج")
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestHasTranslation(t *testing.T) {
	st := translate.NewStore(data)
	assert.True(t, st.HasTranslation("برج خليفة"))
	assert.True(t, st.HasTranslation(" برج خليفة\t"))
	assert.False(t, st.HasTranslation("برج العرب"))
	assert.False(t, st.HasTranslation("Burj Khalifa"))
	assert.False(t, st.HasTranslation(""))
}

func TestFindUntranslated(t *testing.T) {
	st := translate.NewStore(data)
	values := []string{
		"برج العرب", "برج خليفة", "Marina", "", "مدينة", "برج العرب",
	}
	res := st.FindUntranslated(values)
	assert.Equal(t, []string{"برج العرب", "مدينة"}, res)
	assert.Equal(t, 4, st.Len())
}

type source struct {
	calls atomic.Int32
	gate  chan struct{}
	err   error
}

func (s *source) Fetch(_ context.Context) (map[string]string, error) {
	s.calls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	if s.err != nil {
		return nil, s.err
	}
	return data, nil
}

func (s *source) Location() string { return "memory" }

func TestLoaderSingleFlight(t *testing.T) {
	src := &source{gate: make(chan struct{})}
	l := translate.NewLoader(src)

	var wg sync.WaitGroup
	stores := make([]*translate.Store, 8)
	for i := range stores {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st, err := l.Load(context.Background())
			assert.NoError(t, err)
			stores[i] = st
		}()
	}
	close(src.gate)
	wg.Wait()

	st, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, st.Len())
	for _, v := range stores {
		assert.Same(t, st, v)
	}
	assert.Equal(t, int32(1), src.calls.Load())

	calls := src.calls.Load()
	_, err = l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, calls, src.calls.Load(), "result is memoized")
}

func TestLoaderError(t *testing.T) {
	src := &source{err: errors.New("404 Not Found")}
	l := translate.NewLoader(src)

	_, err := l.Load(context.Background())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.TranslationsLoadError, gnErr.Code)

	src.err = nil
	st, err := l.Load(context.Background())
	require.NoError(t, err, "failures are not memoized")
	assert.Equal(t, 4, st.Len())
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestLoaderCancelled(t *testing.T) {
	src := &source{gate: make(chan struct{})}
	defer close(src.gate)
	l := translate.NewLoader(src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := l.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
