package catalog

// bigPictureQuestions is the Big Picture lens question bank.
var bigPictureQuestions = []Question{
	{ID: "b01", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How clear is your north star (what you’re building / aiming at)?"},
	{ID: "b02", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often do you feel scattered across too many threads?"},
	{ID: "b03", Category: CategoryClarity, Weight: 1.1, Reverse: false,
		Text: "How often do you know the next smallest step without overthinking?"},
	{ID: "b04", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you have enough energy/bandwidth to execute?"},
	{ID: "b05", Category: CategoryBoundaries, Weight: 1.2, Reverse: true,
		Text: "How often do you burn time on tasks that don’t move the mission?"},
	{ID: "b06", Category: CategoryExecution, Weight: 1.3, Reverse: false,
		Text: "How often do you ship something (even small) rather than refine forever?"},
	{ID: "b07", Category: CategoryBaseline, Weight: 1.1, Reverse: true,
		Text: "How often do you change direction mid-week?"},
	{ID: "b08", Category: CategoryFeedback, Weight: 1.2, Reverse: false,
		Text: "How often do you measure progress with a real metric (not vibes)?"},
	{ID: "b09", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you review what worked and adjust your plan?"},
	{ID: "b10", Category: CategoryFeedback, Weight: 1.0, Reverse: true,
		Text: "How often do you ignore obvious signals because they’re inconvenient?"},
	{ID: "b11", Category: CategoryBoundaries, Weight: 1.2, Reverse: false,
		Text: "How often do you protect focus time from interruptions?"},
	{ID: "b12", Category: CategoryResources, Weight: 1.1, Reverse: true,
		Text: "How often do you feel you’re operating without a buffer?"},
	{ID: "b13", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you have a simple weekly plan you can actually follow?"},
	{ID: "b14", Category: CategoryBoundaries, Weight: 1.1, Reverse: true,
		Text: "How often do you let urgency from others rewrite your priorities?"},
	{ID: "b15", Category: CategoryClarity, Weight: 1.0, Reverse: false,
		Text: "How often do you know what to say “no” to right now?"},
	{ID: "b16", Category: CategoryBaseline, Weight: 1.0, Reverse: false,
		Text: "How often do you feel meaningful momentum?"},
	{ID: "b17", Category: CategoryExecution, Weight: 1.2, Reverse: true,
		Text: "How often do you procrastinate on the one scary keystone task?"},
	{ID: "b18", Category: CategoryResources, Weight: 1.0, Reverse: false,
		Text: "How often do you have access to help/support/tools when stuck?"},
	{ID: "b19", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you document decisions so you don’t relitigate them?"},
	{ID: "b20", Category: CategoryResources, Weight: 1.1, Reverse: false,
		Text: "How often do you feel your environment is aligned with your goals?"},
	{ID: "b21", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you stop to simplify when complexity rises?"},
	{ID: "b22", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you complete what you start?"},
	{ID: "b23", Category: CategoryBaseline, Weight: 1.1, Reverse: true,
		Text: "How often do you experience “mission drift” after setbacks?"},
	{ID: "b24", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you pick one lever and push it hard for 7 days?"},
	{ID: "b25", Category: CategoryClarity, Weight: 1.1, Reverse: false,
		Text: "How often do you feel the goal is real and reachable?"},
	{ID: "b26", Category: CategoryBaseline, Weight: 1.1, Reverse: false,
		Text: "How often do you feel the mission pulling rather than pushing you?"},
	{ID: "b27", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How often do you know what *not* to work on right now?"},
	{ID: "b28", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often do you feel the system is overloaded?"},
	{ID: "b29", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you simplify when complexity increases?"},
	{ID: "b30", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you feel supported by your environment?"},
	{ID: "b31", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you complete cycles rather than abandon them?"},
	{ID: "b32", Category: CategoryBoundaries, Weight: 1.1, Reverse: true,
		Text: "How often do you drift due to external noise?"},
	{ID: "b33", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How often do you identify the true bottleneck?"},
	{ID: "b34", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you act without waiting for certainty?"},
	{ID: "b35", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you revisit assumptions that may be outdated?"},
	{ID: "b36", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you protect energy as a strategic resource?"},
	{ID: "b37", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often do you feel reactive instead of deliberate?"},
	{ID: "b38", Category: CategoryBoundaries, Weight: 1.1, Reverse: false,
		Text: "How often do you reduce scope instead of adding more?"},
	{ID: "b39", Category: CategoryFeedback, Weight: 1.1, Reverse: true,
		Text: "How often do you experience false urgency?"},
	{ID: "b40", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you know the next stabilizing move?"},
	{ID: "b41", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you execute despite incomplete information?"},
	{ID: "b42", Category: CategoryResources, Weight: 1.0, Reverse: true,
		Text: "How often do you feel constrained by system limits?"},
	{ID: "b43", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you notice drift early?"},
	{ID: "b44", Category: CategoryBoundaries, Weight: 1.1, Reverse: false,
		Text: "How often do you consciously slow the system down?"},
	{ID: "b45", Category: CategoryBaseline, Weight: 1.1, Reverse: false,
		Text: "How often do you feel aligned with the direction?"},
	{ID: "b46", Category: CategoryFeedback, Weight: 1.2, Reverse: false,
		Text: "How often do you cut losses instead of doubling down?"},
	{ID: "b47", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How often do you choose leverage over effort?"},
	{ID: "b48", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you maintain momentum without burnout?"},
	{ID: "b49", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you execute the smallest viable step?"},
	{ID: "b50", Category: CategoryBaseline, Weight: 1.2, Reverse: false,
		Text: "How often does the system feel directionally sound?"},
	{ID: "b51", Category: CategoryFeedback, Weight: 1.2, Reverse: true,
		Text: "How often do you feel effort exceeds return?"},
	{ID: "b52", Category: CategoryBaseline, Weight: 1.2, Reverse: false,
		Text: "How often do you feel directionally aligned?"},
	{ID: "b53", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you notice leverage decay?"},
	{ID: "b54", Category: CategoryBoundaries, Weight: 1.2, Reverse: false,
		Text: "How often do you prune initiatives intentionally?"},
	{ID: "b55", Category: CategoryBaseline, Weight: 1.1, Reverse: true,
		Text: "How often do you experience strategic drift?"},
	{ID: "b56", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you simplify the system to regain control?"},
	{ID: "b57", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you feel supported by structure?"},
	{ID: "b58", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How often do you recognize misaligned incentives?"},
	{ID: "b59", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often do you feel busy but ineffective?"},
	{ID: "b60", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you redesign instead of push harder?"},
	{ID: "b61", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you maintain coherence across efforts?"},
	{ID: "b62", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you stop initiatives that aren’t working?"},
	{ID: "b63", Category: CategoryResources, Weight: 1.1, Reverse: false,
		Text: "How often do constraints feel informative rather than limiting?"},
	{ID: "b64", Category: CategoryBaseline, Weight: 1.1, Reverse: true,
		Text: "How often do you feel pulled off-mission?"},
	{ID: "b65", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How often do you re-anchor to first principles?"},
	{ID: "b66", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you reduce entropy intentionally?"},
	{ID: "b67", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you feel leverage compounding?"},
	{ID: "b68", Category: CategoryFeedback, Weight: 1.2, Reverse: false,
		Text: "How often do you notice when effort stops scaling?"},
	{ID: "b69", Category: CategoryBoundaries, Weight: 1.2, Reverse: false,
		Text: "How often do you choose focus over expansion?"},
	{ID: "b70", Category: CategoryBaseline, Weight: 1.1, Reverse: false,
		Text: "How often does the system self-correct?"},
	{ID: "b71", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you exit paths cleanly?"},
	{ID: "b72", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do you maintain strategic slack?"},
	{ID: "b73", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you see around second-order effects?"},
	{ID: "b74", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you course-correct without panic?"},
	{ID: "b75", Category: CategoryBaseline, Weight: 1.2, Reverse: false,
		Text: "How often does the direction still feel worth pursuing?"},
}
