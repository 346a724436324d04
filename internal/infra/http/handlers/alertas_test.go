package handlers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilaAlertas_ConsumirEsvazia(t *testing.T) {
	f := NewFilaAlertas()
	f.Alertar("primeiro")
	f.Alertar("segundo")

	assert.Equal(t, []string{"primeiro", "segundo"}, f.Consumir())
	assert.Empty(t, f.Consumir())
}

func TestFilaAlertas_Concorrente(t *testing.T) {
	f := NewFilaAlertas()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Alertar("erro")
		}()
	}
	wg.Wait()

	assert.Len(t, f.Consumir(), 50)
}
