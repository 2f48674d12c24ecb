package parsek

import "testing"

var (
	instrSink []instr
	frameSink []frame
	stepSink  []Step
)

func TestInstrMethods(t *testing.T) {
	instrSink = []instr{
		(*takeInstr)(nil),
		(*eofInstr)(nil),
		(*failInstr)(nil),
		(*altInstr)(nil),
		(*tryInstr)(nil),
		(*lookInstr)(nil),
		(*deferInstr)(nil),
		(*doneInstr)(nil),
		(*bindInstr)(nil),
	}
	for _, i := range instrSink {
		i.instr()
	}
}

func TestFrameMethods(t *testing.T) {
	frameSink = []frame{
		(*altFrame)(nil),
		(*tryFrame)(nil),
		(*lookFrame)(nil),
		(*bindsFrame)(nil),
	}
	for _, f := range frameSink {
		f.frame()
	}
}

func TestStepMethods(t *testing.T) {
	stepSink = []Step{
		StepToken{},
		StepEOF{},
		StepError{},
	}
	for _, s := range stepSink {
		s.step()
	}
}
