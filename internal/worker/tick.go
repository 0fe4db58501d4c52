package worker

import (
	"time"

	"github.com/StoreStation/blockserver/internal/proto"
)

// tickInterval is the 1/20 s server tick cadence.
const tickInterval = time.Second / 20

// maybeTick emits SetTickingState+StepTick on first entry to Play, then a
// StepTick every tick interval thereafter.
func (w *Worker) maybeTick(now time.Time) {
	if !w.tickStarted {
		w.tickStarted = true
		w.lastTick = now
		w.sendPacket(proto.PlayIDSetTickingState, proto.SetTickingState{TickRate: 20.0, Frozen: false}.Encode())
		w.sendPacket(proto.PlayIDStepTick, proto.StepTick{Steps: 1}.Encode())
		return
	}
	if now.Sub(w.lastTick) >= tickInterval {
		w.sendPacket(proto.PlayIDStepTick, proto.StepTick{Steps: 1}.Encode())
		w.lastTick = now
	}
}
