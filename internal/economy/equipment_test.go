package economy

import (
	"testing"

	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgrade_ScenarioA_Camera(t *testing.T) {
	ch := newChannelForTest()
	ch.Subscribers = 500
	ch.WatchHours = 500
	ch.Money = 1000

	res, err := Upgrade(&ch, model.SlotCamera)
	require.NoError(t, err)

	assert.Equal(t, 950.0, ch.Money)
	assert.Equal(t, 2, ch.Equipment.Camera)
	assert.Equal(t, UpgradeResult{Slot: model.SlotCamera, FromLevel: 1, ToLevel: 2, Cost: 50}, res)
}

func TestUpgrade_InsufficientFundsLeavesChannelAlone(t *testing.T) {
	ch := newChannelForTest()
	ch.Money = 99.99
	before := ch.Clone()

	_, err := Upgrade(&ch, model.SlotEditingSoftware)
	require.ErrorIs(t, err, model.ErrInsufficientFunds)
	assert.Equal(t, before, ch)
}

func TestUpgrade_MaxLevel(t *testing.T) {
	ch := newChannelForTest()
	ch.Money = 1e6
	ch.Equipment.Microphone = model.MaxEquipmentLevel

	_, err := Upgrade(&ch, model.SlotMicrophone)
	require.ErrorIs(t, err, model.ErrMaxLevel)
	assert.Equal(t, 1e6, ch.Money)
}

func TestUpgrade_UnknownSlot(t *testing.T) {
	ch := newChannelForTest()
	_, err := Upgrade(&ch, model.EquipmentSlot("ring_light"))
	require.ErrorIs(t, err, model.ErrUnknownSlot)
}

func TestUpgrade_DecorationAddsMaxEnergyDifferential(t *testing.T) {
	ch := newChannelForTest()
	ch.Money = 10000

	wantMax := []int{110, 120, 130, 150}
	for i, want := range wantMax {
		before := ch.MaxEnergy
		res, err := Upgrade(&ch, model.SlotDecoration)
		require.NoError(t, err)

		from, _ := LevelDetail(model.SlotDecoration, res.FromLevel)
		to, _ := LevelDetail(model.SlotDecoration, res.ToLevel)
		assert.Equal(t, int(to.StatBoost-from.StatBoost), ch.MaxEnergy-before, "step %d", i)
		assert.Equal(t, want, ch.MaxEnergy)
		assert.LessOrEqual(t, ch.Energy, ch.MaxEnergy)
	}
	assert.Equal(t, 10000.0-30-200-800-3000, ch.Money)
	assert.Equal(t, 5, ch.Equipment.Decoration)
}

func TestUpgrade_DecorationClampsEnergy(t *testing.T) {
	ch := newChannelForTest()
	ch.Money = 500
	ch.Equipment.Decoration = 2
	ch.MaxEnergy = 105 // already below the ladder value, e.g. an older save
	ch.Energy = 140

	_, err := Upgrade(&ch, model.SlotDecoration)
	require.NoError(t, err)
	assert.Equal(t, 115, ch.MaxEnergy)
	assert.Equal(t, 115, ch.Energy)
}

func TestQualityMultiplier_IgnoresDecoration(t *testing.T) {
	eq := model.Equipment{Camera: 3, Microphone: 2, EditingSoftware: 5, Decoration: 5}
	assert.InDelta(t, 0.10+0.03+0.20, QualityMultiplier(eq), 1e-9)
	assert.Equal(t, 0.20, EditingBoost(eq))
	assert.Zero(t, QualityMultiplier(model.BasicEquipment()))
}

func TestNextLevel(t *testing.T) {
	l, ok := NextLevel(model.SlotEditingSoftware, 1)
	require.True(t, ok)
	assert.Equal(t, 100.0, l.Cost)

	_, ok = NextLevel(model.SlotEditingSoftware, 5)
	assert.False(t, ok)
}

func TestMonetization(t *testing.T) {
	bal := config.Default()

	t.Run("eligibility needs both thresholds", func(t *testing.T) {
		assert.False(t, EvaluateMonetization(model.Channel{Subscribers: 1000, WatchHours: 999.99}, bal))
		assert.False(t, EvaluateMonetization(model.Channel{Subscribers: 999, WatchHours: 5000}, bal))
		assert.True(t, EvaluateMonetization(model.Channel{Subscribers: 1000, WatchHours: 1000}, bal))
	})

	t.Run("activate rejects ineligible", func(t *testing.T) {
		ch := newChannelForTest()
		on, err := Activate(&ch, bal)
		require.ErrorIs(t, err, model.ErrNotEligible)
		assert.False(t, on)
		assert.False(t, ch.IsMonetized)
	})

	t.Run("latch never reverts", func(t *testing.T) {
		ch := newChannelForTest()
		ch.Subscribers, ch.WatchHours = 1500, 1500
		on, err := Activate(&ch, bal)
		require.NoError(t, err)
		assert.True(t, on)

		ch.Subscribers, ch.WatchHours = 0, 0
		assert.False(t, Latch(&ch, bal))
		on, err = Activate(&ch, bal)
		require.NoError(t, err)
		assert.False(t, on)
		assert.True(t, ch.IsMonetized)
	})
}
