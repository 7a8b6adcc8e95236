package lanetopo

type TurnType uint16

const (
	TURN_STRAIGHT = TurnType(iota + 1)
	TURN_LEFT
	TURN_RIGHT
	TURN_UTURN
	TURN_UNDEFINED = TurnType(0)
)

func (iotaIdx TurnType) String() string {
	return [...]string{"undefined", "straight", "left", "right", "uturn"}[iotaIdx]
}
