package domain

// SendOutcome is the integer contract the host expects from a chat send.
// Positive means sent with immediate local echo, zero means the echo comes back
// later from signald, negative is a failure.
type SendOutcome int

const (
	OutcomeSent          SendOutcome = 1
	OutcomeDelayedEcho   SendOutcome = 0
	OutcomeSendFailed    SendOutcome = -1
	OutcomeNoSuchAddress SendOutcome = -6 // ENXIO
)

func (o SendOutcome) Failed() bool {
	return o < 0
}
