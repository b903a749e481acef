// Package quotes holds the affirmations shown after a mood is saved.
package quotes

import "math/rand"

var all = []string{
	"Every day may not be good, but there is something good in every day.",
	"Your feelings are valid, whatever they are today.",
	"Small steps every day add up to big changes.",
	"You showed up for yourself today. That matters.",
	"It's okay to not be okay.",
	"Storms don't last forever.",
	"Be gentle with yourself, you're doing the best you can.",
	"One mood at a time, one day at a time.",
	"Noticing how you feel is the first step to feeling better.",
	"You are more than your worst day.",
	"Progress, not perfection.",
	"Breathe. You've survived every hard day so far.",
	"Happiness is not a destination, it's a habit.",
	"Even the darkest night will end and the sun will rise.",
	"Your mind deserves the same care as your body.",
	"Feelings are visitors. Let them come and go.",
	"A bad day does not mean a bad life.",
	"You don't have to see the whole staircase, just take the first step.",
	"Rest is productive too.",
	"Today's mood is tomorrow's data.",
	"Celebrate the small wins, they count.",
	"You can't pour from an empty cup. Take care of yourself first.",
	"The way you speak to yourself matters.",
	"Growth is quiet. Keep going.",
	"It's brave to check in with yourself.",
	"Tough times never last, but tough people do.",
	"Let today be the start of something new.",
	"You are allowed to take up space.",
	"Every emotion is a messenger. Listen kindly.",
	"Keep your face toward the sunshine.",
	"What you feel today won't define forever.",
	"Self-awareness is a superpower.",
	"Kindness starts with the person in the mirror.",
	"Slow progress is still progress.",
	"You've made it through 100% of your hardest days.",
	"Tomorrow is a fresh page.",
}

// Random returns one affirmation.
func Random() string {
	return all[rand.Intn(len(all))]
}

// All returns the full catalog in stable order.
func All() []string {
	out := make([]string, len(all))
	copy(out, all)
	return out
}
