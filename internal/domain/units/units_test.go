package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// UnitsTestSuite covers conversion, scaling and formatting
type UnitsTestSuite struct {
	suite.Suite
}

func (suite *UnitsTestSuite) TestRoundToNice() {
	cases := []struct {
		name  string
		input float64
		want  float64
	}{
		{"TinyValue_TwoDecimals", 0.0432, 0.04},
		{"JustAboveQuarter_SnapsToQuarter", 0.26, 0.25},
		{"BetweenHalfAndTwoThirds_SnapsToTwoThirds", 0.6, 0.67},
		{"LowerFractionBound_SnapsToQuarter", 0.125, 0.25},
		{"NearOne_SnapsToOne", 0.95, 1},
		{"SingleDigits_NearestQuarter", 1.13, 1.25},
		{"SingleDigits_RoundsDown", 2.1, 2},
		{"Tens_NearestHalf", 12.3, 12.5},
		{"Hundreds_NearestInteger", 236.588, 237},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			assert.InDelta(suite.T(), tc.want, RoundToNice(tc.input), 1e-9)
		})
	}
}

func (suite *UnitsTestSuite) TestConvert() {
	suite.Run("CupToMetric_ShouldBeMillilitres", func() {
		// Act
		m := Convert(1, "cup", Metric)

		// Assert
		assert.Equal(suite.T(), Measurement{Quantity: 237, Unit: "ml"}, m)
	})

	suite.Run("UnitLookup_IgnoresCaseAndWhitespace", func() {
		m := Convert(2, " LBS ", Metric)

		assert.Equal(suite.T(), "kg", m.Unit)
		assert.InDelta(suite.T(), 1.0, m.Quantity, 1e-9)
	})

	suite.Run("GramsToImperial_ShouldBeOunces", func() {
		m := Convert(500, "g", Imperial)

		assert.Equal(suite.T(), Measurement{Quantity: 17.5, Unit: "oz"}, m)
	})

	suite.Run("LitresToImperial_AcceptsBothCases", func() {
		upper := Convert(1, "L", Imperial)
		lower := Convert(1, "l", Imperial)

		assert.Equal(suite.T(), Measurement{Quantity: 1, Unit: "quart"}, upper)
		assert.Equal(suite.T(), upper, lower)
	})

	suite.Run("UnknownUnit_ShouldPassThroughUnrounded", func() {
		m := Convert(0.333, "clove", Metric)

		assert.Equal(suite.T(), Measurement{Quantity: 0.333, Unit: "clove"}, m)
	})

	suite.Run("AlreadyInTargetSystem_ShouldPassThrough", func() {
		assert.Equal(suite.T(), Measurement{Quantity: 250, Unit: "ml"}, Convert(250, "ml", Metric))
		assert.Equal(suite.T(), Measurement{Quantity: 1, Unit: "cup"}, Convert(1, "cup", Imperial))
	})
}

func (suite *UnitsTestSuite) TestParseSystem() {
	s, err := ParseSystem(" Metric")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), Metric, s)

	_, err = ParseSystem("nautical")
	assert.Error(suite.T(), err)
	assert.False(suite.T(), System("nautical").Valid())
}

func (suite *UnitsTestSuite) TestScale() {
	suite.Run("HalvingServings_HalvesQuantity", func() {
		assert.InDelta(suite.T(), 1.0, Scale(2, 4, 2), 1e-9)
	})

	suite.Run("IncreasingServings_RoundsNicely", func() {
		assert.InDelta(suite.T(), 2.25, Scale(1.5, 4, 6), 1e-9)
	})

	suite.Run("SameServings_NiceQuantityUnchanged", func() {
		for _, q := range []float64{0.05, 0.33, 0.75, 2.5, 12.5, 150} {
			assert.InDelta(suite.T(), q, Scale(q, 6, 6), 1e-9, "quantity %v", q)
		}
	})

	suite.Run("MoreServings_NeverLessQuantity", func() {
		prev := 0.0
		for desired := 1; desired <= 24; desired++ {
			got := Scale(1, 4, desired)
			assert.GreaterOrEqual(suite.T(), got, prev, "desired %d", desired)
			prev = got
		}
	})

	suite.Run("ScaleFactor_IsDesiredOverOriginal", func() {
		assert.InDelta(suite.T(), 1.5, ScaleFactor(4, 6), 1e-9)
	})
}

func (suite *UnitsTestSuite) TestFormatQuantity() {
	cases := map[string]struct {
		input float64
		want  string
	}{
		"OneAndAHalf":      {1.5, "1½"},
		"OneThird":         {0.33, "⅓"},
		"TwoThirds":        {0.67, "⅔"},
		"Quarter":          {0.25, "¼"},
		"TwoAndThreeQtr":   {2.75, "2¾"},
		"WholeNumber":      {3, "3"},
		"PlainDecimal":     {2.1, "2.1"},
		"TrailingZeros":    {1.2, "1.2"},
		"SmallDecimal":     {0.02, "0.02"},
		"HalfRoundsUp":     {0.125, "0.13"},
		"NearWholeDecimal": {10.04, "10"},
		"Zero":             {0, "0"},
	}

	for name, tc := range cases {
		suite.Run(name, func() {
			assert.Equal(suite.T(), tc.want, FormatQuantity(tc.input))
		})
	}
}

func (suite *UnitsTestSuite) TestFormatMeasurement() {
	suite.Run("ImperialSourceToMetric_Converts", func() {
		assert.Equal(suite.T(), "473 ml", FormatMeasurement(2, "cups", Metric, ""))
		assert.Equal(suite.T(), "22 ml", FormatMeasurement(1.5, "tbsp", Metric, ""))
	})

	suite.Run("MetricSourceToImperial_Converts", func() {
		assert.Equal(suite.T(), "17½ oz", FormatMeasurement(500, "g", Imperial, ""))
	})

	suite.Run("SourceAlreadyInTarget_KeepsUnit", func() {
		assert.Equal(suite.T(), "1 cup", FormatMeasurement(1, "cup", Imperial, ""))
		assert.Equal(suite.T(), "2 cups", FormatMeasurement(2, "cups", Imperial, "cups"))
	})

	suite.Run("CountedItems_OmitUnit", func() {
		assert.Equal(suite.T(), "3", FormatMeasurement(3, "piece", Metric, ""))
		assert.Equal(suite.T(), "2", FormatMeasurement(2, "unit", Imperial, ""))
		assert.Equal(suite.T(), "½", FormatMeasurement(0.5, "", Metric, ""))
	})

	suite.Run("UnknownUnit_FormatsAsIs", func() {
		assert.Equal(suite.T(), "2 cloves", FormatMeasurement(2, "cloves", Metric, ""))
	})
}

func (suite *UnitsTestSuite) TestFormatDuration() {
	assert.Equal(suite.T(), "45 min", FormatDuration(45))
	assert.Equal(suite.T(), "1 hr", FormatDuration(60))
	assert.Equal(suite.T(), "1 hr 30 min", FormatDuration(90))
	assert.Equal(suite.T(), "2 hr 5 min", FormatDuration(125))
	assert.Equal(suite.T(), "45 min", FormatTotalTime(15, 30))
}

// TestUnitsTestSuite runs the units test suite
func TestUnitsTestSuite(t *testing.T) {
	suite.Run(t, new(UnitsTestSuite))
}
