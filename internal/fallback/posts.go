package fallback

import "github.com/aminafridi/PhysioCare-sub000/internal/core"

var posts = []core.BlogPost{
	{
		ID:       "static-post-lower-back",
		Title:    "5 Simple Exercises to Ease Lower Back Pain",
		Slug:     "5-simple-exercises-to-ease-lower-back-pain",
		Excerpt:  "Gentle movements you can do at home to relieve stiffness and build a stronger back.",
		Category: "Pain Management",
		Author:   "Dr. Sarah Mitchell",
		Date:     "March 12, 2024",
		ReadTime: "5 min read",
		Content: "<p>Lower back pain is one of the most common reasons people visit a physiotherapist. " +
			"The good news is that gentle, regular movement is usually the best medicine.</p>" +
			"<h2>1. Knee-to-chest stretch</h2><p>Lie on your back and draw one knee towards your chest. Hold for 20 seconds.</p>" +
			"<h2>2. Pelvic tilts</h2><p>Flatten your lower back into the floor by tightening your stomach muscles.</p>" +
			"<h2>3. Cat-cow</h2><p>On hands and knees, slowly arch and round your back.</p>" +
			"<h2>4. Bridges</h2><p>Lift your hips while squeezing your glutes, then lower slowly.</p>" +
			"<h2>5. Walking</h2><p>A daily walk keeps the spine mobile and the muscles conditioned.</p>" +
			"<p>If pain persists for more than a few weeks, book an assessment.</p>",
	},
	{
		ID:       "static-post-desk-posture",
		Title:    "Desk Posture: Small Changes, Big Difference",
		Slug:     "desk-posture-small-changes-big-difference",
		Excerpt:  "How to set up your workstation and build movement breaks into a long working day.",
		Category: "Posture",
		Author:   "Dr. Sarah Mitchell",
		Date:     "February 28, 2024",
		ReadTime: "4 min read",
		Content: "<p>There is no single perfect posture. The best posture is the next one, so change " +
			"position often.</p><ul><li>Screen at eye level</li><li>Feet flat on the floor</li>" +
			"<li>Elbows close to 90 degrees</li><li>Stand up every 30 minutes</li></ul>",
	},
	{
		ID:       "static-post-acl",
		Title:    "Returning to Sport After an ACL Injury",
		Slug:     "returning-to-sport-after-an-acl-injury",
		Excerpt:  "What the phases of ACL rehabilitation look like and how we decide you are ready to play.",
		Category: "Sports Injury",
		Author:   "Dr. Sarah Mitchell",
		Date:     "January 15, 2024",
		ReadTime: "7 min read",
		Content: "<p>ACL rehabilitation usually takes nine to twelve months. Progress is guided by " +
			"milestones rather than dates.</p><h2>Early phase</h2><p>Control swelling and restore full extension.</p>" +
			"<h2>Strength phase</h2><p>Rebuild quadriceps and hamstring strength.</p>" +
			"<h2>Return to sport</h2><p>Hop tests and sport-specific drills confirm readiness.</p>",
	},
	{
		ID:       "static-post-active-ageing",
		Title:    "Staying Active as You Age",
		Slug:     "staying-active-as-you-age",
		Excerpt:  "Balance, strength and mobility habits that keep you independent for longer.",
		Category: "Wellness",
		Author:   "Dr. Sarah Mitchell",
		Date:     "December 4, 2023",
		ReadTime: "5 min read",
		Content: "<p>Muscle strength and balance decline with age, but both respond to training at " +
			"any age.</p><p>Aim for strength work twice a week and practise balance daily.</p>",
	},
}
