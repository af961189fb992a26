package fallback

import "github.com/aminafridi/PhysioCare-sub000/internal/core"

var conditions = []core.Condition{
	{
		ID:          "condition-lower-back-pain",
		Slug:        "lower-back-pain",
		Title:       "Lower Back Pain",
		Summary:     "Aching, stiffness or sharp pain in the lower back.",
		Description: "Most lower back pain is mechanical and improves with the right mix of movement, manual therapy and reassurance.",
		Symptoms:    []string{"Stiffness after sitting", "Pain when bending", "Pain spreading to the buttock"},
		Treatments:  []string{"Manual therapy", "Core and hip strengthening", "Graded return to activity"},
		IconName:    "bone",
	},
	{
		ID:          "condition-neck-pain",
		Slug:        "neck-pain",
		Title:       "Neck Pain",
		Summary:     "Pain and restricted movement in the neck and upper shoulders.",
		Description: "Often linked to posture, stress or whiplash. Treatment restores movement and builds endurance in the supporting muscles.",
		Symptoms:    []string{"Restricted turning", "Headaches", "Tight upper shoulders"},
		Treatments:  []string{"Joint mobilisation", "Postural retraining", "Deep neck flexor exercises"},
		IconName:    "user",
	},
	{
		ID:          "condition-sports-injuries",
		Slug:        "sports-injuries",
		Title:       "Sports Injuries",
		Summary:     "Sprains, strains and overuse injuries from training and competition.",
		Description: "We diagnose the injured structure, manage load and rebuild capacity so you return to sport stronger.",
		Symptoms:    []string{"Swelling", "Pain on loading", "Loss of power or speed"},
		Treatments:  []string{"Load management", "Progressive strengthening", "Sport-specific drills"},
		IconName:    "dumbbell",
	},
	{
		ID:          "condition-arthritis",
		Slug:        "arthritis",
		Title:       "Arthritis",
		Summary:     "Joint pain and stiffness from osteoarthritis or inflammatory arthritis.",
		Description: "Exercise is one of the most effective treatments for arthritis. We build a plan that keeps joints moving without flaring symptoms.",
		Symptoms:    []string{"Morning stiffness", "Joint swelling", "Reduced range of motion"},
		Treatments:  []string{"Strength training", "Hydrotherapy advice", "Activity pacing"},
		IconName:    "heart",
	},
	{
		ID:          "condition-plantar-fasciitis",
		Slug:        "plantar-fasciitis",
		Title:       "Plantar Fasciitis",
		Summary:     "Heel pain that is worst with the first steps in the morning.",
		Description: "Irritation of the plantar fascia responds well to loading exercises, footwear advice and short-term taping.",
		Symptoms:    []string{"Sharp heel pain on waking", "Pain after long standing", "Tenderness under the heel"},
		Treatments:  []string{"Calf and foot strengthening", "Taping", "Footwear review"},
		IconName:    "footprints",
	},
	{
		ID:          "condition-stroke-recovery",
		Slug:        "stroke-recovery",
		Title:       "Stroke Recovery",
		Summary:     "Regaining movement, balance and independence after a stroke.",
		Description: "Neurological rehabilitation uses repetition and task practice to help the brain relearn movement.",
		Symptoms:    []string{"Weakness on one side", "Poor balance", "Difficulty walking"},
		Treatments:  []string{"Gait training", "Balance retraining", "Upper limb rehabilitation"},
		IconName:    "brain",
	},
}
