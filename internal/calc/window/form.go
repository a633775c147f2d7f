package window

type State int

const (
	StateIdle State = iota
	StateResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateResult:
		return "result"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Form keeps the outcome of the latest submit for a front-end to render.
// Each Submit replaces the previous outcome, so a rejected input never
// leaves an old result on screen.
type Form struct {
	Width  string
	Height string
	Result *Result
	Err    error
}

func (f *Form) Submit(width, height string) State {
	f.Width, f.Height = width, height
	f.Result, f.Err = nil, nil

	res, err := Calculate(Input{Width: width, Height: height})
	if err != nil {
		f.Err = err
		return StateError
	}
	f.Result = &res
	return StateResult
}

func (f *Form) State() State {
	switch {
	case f.Err != nil:
		return StateError
	case f.Result != nil:
		return StateResult
	default:
		return StateIdle
	}
}
