package odometry

import (
	"testing"

	"go.viam.com/test"
)

func TestContactStateOf(t *testing.T) {
	test.That(t, contactStateOf(false, false), test.ShouldEqual, ContactNone)
	test.That(t, contactStateOf(true, false), test.ShouldEqual, ContactFore)
	test.That(t, contactStateOf(false, true), test.ShouldEqual, ContactHind)
	test.That(t, contactStateOf(true, true), test.ShouldEqual, ContactBoth)
	test.That(t, ContactBoth.String(), test.ShouldEqual, "both")
}

func TestContactResolve(t *testing.T) {
	times := []float64{0, 1, 2, 3}

	t.Run("literal indicator", func(t *testing.T) {
		cs, err := ContactInput{Indicator: []bool{true, true, false, false}}.resolve("fore", times)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cs.at(0.4), test.ShouldBeTrue)
		test.That(t, cs.at(1.6), test.ShouldBeFalse)
		test.That(t, cs.at(-1), test.ShouldBeTrue)
		test.That(t, cs.at(10), test.ShouldBeFalse)
	})

	t.Run("thresholded foot height", func(t *testing.T) {
		threshold := 0.05
		cs, err := ContactInput{
			FootHeight: []float64{0.0, 0.02, 0.3, 0.01},
			Threshold:  &threshold,
		}.resolve("hind", times)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cs.active, test.ShouldResemble, []bool{true, true, false, true})
	})

	t.Run("thresholding without a threshold", func(t *testing.T) {
		_, err := ContactInput{FootHeight: []float64{0, 0}}.resolve("hind", []float64{0, 1})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "hind")
		test.That(t, err.Error(), test.ShouldContainSubstring, "threshold")
	})

	t.Run("denser contact time base", func(t *testing.T) {
		cs, err := ContactInput{
			Times:     []float64{0, 0.5, 1, 1.5, 2, 2.5, 3},
			Indicator: []bool{true, false, true, false, true, false, true},
		}.resolve("fore", times)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cs.at(0.6), test.ShouldBeFalse)
		test.That(t, cs.at(0.9), test.ShouldBeTrue)
	})

	t.Run("malformed inputs", func(t *testing.T) {
		_, err := ContactInput{}.resolve("fore", times)
		test.That(t, err, test.ShouldNotBeNil)

		_, err = ContactInput{Indicator: []bool{true}}.resolve("fore", times)
		test.That(t, err, test.ShouldNotBeNil)

		threshold := 0.0
		_, err = ContactInput{
			Indicator:  []bool{true, true, true, true},
			FootHeight: []float64{0, 0, 0, 0},
			Threshold:  &threshold,
		}.resolve("fore", times)
		test.That(t, err, test.ShouldNotBeNil)
	})
}
