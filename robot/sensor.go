package robot

// SensorModel holds the probability that an observation of each label
// reads correctly. Values outside [0,1] are not rejected; they are
// simply compared against a uniform draw like any other.
type SensorModel struct {
	PCorrectWall   float64
	PCorrectWindow float64
}

// PerfectSensor never misreads.
func PerfectSensor() SensorModel {
	return SensorModel{PCorrectWall: 1.0, PCorrectWindow: 1.0}
}

// Perceive returns the sensor's reading of truth, consuming exactly one
// draw from src.
func (s SensorModel) Perceive(truth Label, src Source) Label {
	u := src.Float64()
	if truth == Wall {
		if u <= s.PCorrectWall {
			return Wall
		}
		return Window
	}
	if u <= s.PCorrectWindow {
		return Window
	}
	return Wall
}
