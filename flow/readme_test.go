package flow_test

import (
	"log"
	"testing"

	"github.com/delaneyj/pushparty/flow"
	"github.com/stretchr/testify/assert"
)

// from README
func TestBasicUsage(t *testing.T) {
	rs := flow.NewReactiveSystem()
	price := flow.NewCell(rs, 10.0)
	quantity := flow.NewCell(rs, 3.0)
	total := flow.Derive(flow.Mul(price, quantity))

	total.Connect(func(v float64) {
		log.Printf("Total is: %.2f", v)
	})

	assert.Equal(t, 30.0, total.Value())
	quantity.Set(4) // Console: Total is: 40.00
	assert.Equal(t, 40.0, total.Value())
}

// from README
func TestBasicPipeline(t *testing.T) {
	rs := flow.NewReactiveSystem()
	clicks := flow.NewTrigger[int](rs)

	doubleClicks := flow.Pipe(clicks, flow.Filter(func(n int) bool { return n >= 2 }))
	count := flow.Retain(flow.Pipe(doubleClicks, flow.Accumulate(0, func(acc, _ int) int {
		return acc + 1
	})))

	clicks.Fire(1)
	clicks.Fire(2)
	clicks.Fire(3)
	clicks.Fire(1)
	assert.Equal(t, 2, count.Value())
}
