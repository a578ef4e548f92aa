package advice_test

import (
	"testing"

	"github.com/sandeepkvelagam/oddside/cards"
	"github.com/sandeepkvelagam/oddside/domain/advice"
	"github.com/sandeepkvelagam/oddside/domain/hands"
	"github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	convey.Convey("Given every hand category", t, func() {
		want := map[hands.Category]advice.Tier{
			hands.RoyalFlush:    advice.Monster,
			hands.StraightFlush: advice.Monster,
			hands.FourOfAKind:   advice.VeryStrong,
			hands.FullHouse:     advice.VeryStrong,
			hands.Flush:         advice.Strong,
			hands.Straight:      advice.Good,
			hands.ThreeOfAKind:  advice.Decent,
			hands.TwoPair:       advice.Marginal,
			hands.OnePair:       advice.Weak,
			hands.HighCard:      advice.VeryWeak,
		}

		convey.Convey("Then each maps to its tier", func() {
			for category, tier := range want {
				convey.So(advice.Classify(category), convey.ShouldEqual, tier)
			}
		})

		convey.Convey("Then an unknown category below high card is very weak", func() {
			convey.So(advice.Classify(hands.Category(0)), convey.ShouldEqual, advice.VeryWeak)
		})
	})
}

func result(category hands.Category) hands.Result {
	return hands.Result{Category: category, Name: category.String(), Description: "test hand"}
}

func TestRecommend(t *testing.T) {
	convey.Convey("Given a full house", t, func() {
		r := hands.Evaluate(cards.MustParseAll("2h 5d"), cards.MustParseAll("2c 2d 5s"))

		convey.Convey("When recommending at any stage", func() {
			for _, stage := range []advice.Stage{advice.Preflop, advice.Flop, advice.Turn, advice.River, ""} {
				rec := advice.Recommend(r, stage)

				convey.Convey("Then it raises with high potential at "+string(stage), func() {
					convey.So(rec.Action, convey.ShouldEqual, advice.Raise)
					convey.So(rec.Potential, convey.ShouldEqual, advice.High)
					convey.So(rec.Reasoning, convey.ShouldContainSubstring, "Full House")
					convey.So(rec.Reasoning, convey.ShouldContainSubstring, "2s full of 5s")
				})
			}
		})
	})

	convey.Convey("Given the category thresholds", t, func() {
		cases := []struct {
			category  hands.Category
			action    advice.Action
			potential advice.Potential
		}{
			{hands.RoyalFlush, advice.Raise, advice.High},
			{hands.FourOfAKind, advice.Raise, advice.High},
			{hands.Flush, advice.Raise, advice.High},
			{hands.Straight, advice.Raise, advice.High},
			{hands.ThreeOfAKind, advice.Call, advice.Medium},
			{hands.TwoPair, advice.Call, advice.Medium},
			{hands.HighCard, advice.Fold, advice.Low},
		}

		convey.Convey("Then the stage does not change the outcome", func() {
			for _, c := range cases {
				for _, stage := range []advice.Stage{advice.Flop, advice.River} {
					rec := advice.Recommend(result(c.category), stage)
					convey.So(rec.Action, convey.ShouldEqual, c.action)
					convey.So(rec.Potential, convey.ShouldEqual, c.potential)
				}
			}
		})
	})

	convey.Convey("Given one pair", t, func() {
		pair := result(hands.OnePair)

		convey.Convey("On the flop it checks", func() {
			rec := advice.Recommend(pair, advice.Flop)
			convey.So(rec.Action, convey.ShouldEqual, advice.Check)
			convey.So(rec.Potential, convey.ShouldEqual, advice.Low)
		})

		convey.Convey("On the river it folds", func() {
			rec := advice.Recommend(pair, advice.River)
			convey.So(rec.Action, convey.ShouldEqual, advice.Fold)
			convey.So(rec.Potential, convey.ShouldEqual, advice.Low)
		})

		convey.Convey("Stage matching is case sensitive", func() {
			rec := advice.Recommend(pair, advice.Stage("flop"))
			convey.So(rec.Action, convey.ShouldEqual, advice.Fold)
		})
	})

	convey.Convey("Given the same input twice", t, func() {
		r := result(hands.TwoPair)
		convey.So(advice.Recommend(r, advice.Turn), convey.ShouldResemble, advice.Recommend(r, advice.Turn))
	})
}

func TestStage_Valid(t *testing.T) {
	convey.Convey("Only the four exact stage labels are valid", t, func() {
		convey.So(advice.Flop.Valid(), convey.ShouldBeTrue)
		convey.So(advice.Stage("Showdown").Valid(), convey.ShouldBeFalse)
		convey.So(advice.Stage("river").Valid(), convey.ShouldBeFalse)
	})
}
