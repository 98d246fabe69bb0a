package catalog

// financialQuestions is the Financial lens question bank.
var financialQuestions = []Question{
	{ID: "f01", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How often do you know your exact cash position (today) without guessing?"},
	{ID: "f02", Category: CategoryClarity, Weight: 1.2, Reverse: true,
		Text: "How often do bills/fees surprise you?"},
	{ID: "f03", Category: CategoryBaseline, Weight: 1.3, Reverse: true,
		Text: "How often do you feel like you’re one emergency away from collapse?"},
	{ID: "f04", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do you have a buffer (even small) after essentials?"},
	{ID: "f05", Category: CategoryFeedback, Weight: 1.1, Reverse: true,
		Text: "How often do you spend to regulate mood/stress?"},
	{ID: "f06", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How consistently do you track spending (even roughly)?"},
	{ID: "f07", Category: CategoryExecution, Weight: 1.2, Reverse: true,
		Text: "How often do you miss due dates?"},
	{ID: "f08", Category: CategoryBoundaries, Weight: 1.1, Reverse: true,
		Text: "How often do you avoid opening financial mail/notifications?"},
	{ID: "f09", Category: CategoryExecution, Weight: 1.0, Reverse: false,
		Text: "How often do you negotiate rates, call providers, or challenge charges?"},
	{ID: "f10", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How clear are you on your top 3 financial priorities this month?"},
	{ID: "f11", Category: CategoryBoundaries, Weight: 1.2, Reverse: true,
		Text: "How often do impulse purchases break your plan?"},
	{ID: "f12", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you review recurring subscriptions/auto-pay items?"},
	{ID: "f13", Category: CategoryBoundaries, Weight: 1.1, Reverse: false,
		Text: "How often do you make a simple plan before spending (need vs want)?"},
	{ID: "f14", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often does financial stress disrupt sleep/focus?"},
	{ID: "f15", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you feel your income is stable/predictable?"},
	{ID: "f16", Category: CategoryClarity, Weight: 1.1, Reverse: false,
		Text: "How often do you know your minimum survival number per month?"},
	{ID: "f17", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you take one concrete financial action per week?"},
	{ID: "f18", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you use a system (notes/app/spreadsheet) to reduce chaos?"},
	{ID: "f19", Category: CategoryResources, Weight: 1.1, Reverse: true,
		Text: "How often do you borrow/advance money to get through the month?"},
	{ID: "f20", Category: CategoryExecution, Weight: 1.2, Reverse: true,
		Text: "How often do you postpone decisions until they become emergencies?"},
	{ID: "f21", Category: CategoryBoundaries, Weight: 1.0, Reverse: false,
		Text: "How often do you set boundaries with others about money (loans, favors, guilt)?"},
	{ID: "f22", Category: CategoryFeedback, Weight: 1.0, Reverse: true,
		Text: "How often do you feel ashamed about money (and hide it)?"},
	{ID: "f23", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you have a realistic plan for the next 30 days?"},
	{ID: "f24", Category: CategoryBoundaries, Weight: 1.1, Reverse: false,
		Text: "How often do you follow that plan when stress hits?"},
	{ID: "f25", Category: CategoryBaseline, Weight: 1.1, Reverse: false,
		Text: "How often do you recover quickly after a financial hit?"},
	{ID: "f26", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often do you feel braced when checking your accounts?"},
	{ID: "f27", Category: CategoryFeedback, Weight: 1.1, Reverse: true,
		Text: "How often do you delay looking at numbers you already know are bad?"},
	{ID: "f28", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do you know exactly where the next dollar is coming from?"},
	{ID: "f29", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you plan spending before money arrives?"},
	{ID: "f30", Category: CategoryBoundaries, Weight: 1.1, Reverse: true,
		Text: "How often do you spend defensively rather than intentionally?"},
	{ID: "f31", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you adjust behavior after a bad financial week?"},
	{ID: "f32", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How often do you know which expense is the main pressure source?"},
	{ID: "f33", Category: CategoryBoundaries, Weight: 1.0, Reverse: true,
		Text: "How often do you choose convenience over cost knowingly?"},
	{ID: "f34", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often do you make financial decisions under urgency?"},
	{ID: "f35", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you review outcomes of past financial decisions?"},
	{ID: "f36", Category: CategoryBoundaries, Weight: 1.2, Reverse: false,
		Text: "How often do you avoid commitments you can’t afford?"},
	{ID: "f37", Category: CategoryBaseline, Weight: 1.1, Reverse: true,
		Text: "How often do you feel your system is fragile?"},
	{ID: "f38", Category: CategoryClarity, Weight: 1.1, Reverse: false,
		Text: "How often do you know what *not* to spend on right now?"},
	{ID: "f39", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you act quickly on small financial improvements?"},
	{ID: "f40", Category: CategoryFeedback, Weight: 1.2, Reverse: true,
		Text: "How often do you feel trapped by past financial choices?"},
	{ID: "f41", Category: CategoryBoundaries, Weight: 1.1, Reverse: false,
		Text: "How often do you consciously reduce exposure to risk?"},
	{ID: "f42", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do you maintain at least one financial buffer?"},
	{ID: "f43", Category: CategoryBaseline, Weight: 1.0, Reverse: true,
		Text: "How often do you delay necessary purchases due to fear?"},
	{ID: "f44", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you feel your finances are understandable?"},
	{ID: "f45", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you execute the boring but stabilizing actions?"},
	{ID: "f46", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you revise plans when reality changes?"},
	{ID: "f47", Category: CategoryBoundaries, Weight: 1.1, Reverse: false,
		Text: "How often do you stop spending before stress kicks in?"},
	{ID: "f48", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you feel supported rather than cornered financially?"},
	{ID: "f49", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How often do you treat finances as a system instead of emergencies?"},
	{ID: "f50", Category: CategoryBaseline, Weight: 1.2, Reverse: false,
		Text: "How often do you recover equilibrium after a hit?"},
	{ID: "f51", Category: CategoryBaseline, Weight: 1.2, Reverse: false,
		Text: "How often do you recover financially after an unexpected hit?"},
	{ID: "f52", Category: CategoryBaseline, Weight: 1.1, Reverse: true,
		Text: "How often do financial worries bleed into other decisions?"},
	{ID: "f53", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you recognize false economies?"},
	{ID: "f54", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you choose flexibility over optimization?"},
	{ID: "f55", Category: CategoryResources, Weight: 1.2, Reverse: true,
		Text: "How often do fixed costs feel constraining?"},
	{ID: "f56", Category: CategoryExecution, Weight: 1.1, Reverse: true,
		Text: "How often do you decline opportunities due to cash timing?"},
	{ID: "f57", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often do you feel financially brittle?"},
	{ID: "f58", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How often do you know your break-even point?"},
	{ID: "f59", Category: CategoryBoundaries, Weight: 1.1, Reverse: false,
		Text: "How often do you re-negotiate obligations?"},
	{ID: "f60", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you notice compounding stress from small leaks?"},
	{ID: "f61", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you act to reduce fragility?"},
	{ID: "f62", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do you feel optional rather than cornered?"},
	{ID: "f63", Category: CategoryBoundaries, Weight: 1.2, Reverse: false,
		Text: "How often do you avoid financial commitments that limit exit?"},
	{ID: "f64", Category: CategoryClarity, Weight: 1.1, Reverse: false,
		Text: "How often do you track downside as carefully as upside?"},
	{ID: "f65", Category: CategoryFeedback, Weight: 1.2, Reverse: false,
		Text: "How often do financial decisions age well?"},
	{ID: "f66", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often do you feel one bill away from disruption?"},
	{ID: "f67", Category: CategoryFeedback, Weight: 1.1, Reverse: true,
		Text: "How often do you trade short-term relief for long-term pressure?"},
	{ID: "f68", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do you preserve cash as leverage?"},
	{ID: "f69", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you act early instead of waiting for crisis?"},
	{ID: "f70", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you understand second-order financial effects?"},
	{ID: "f71", Category: CategoryBaseline, Weight: 1.1, Reverse: true,
		Text: "How often do you feel financially boxed in?"},
	{ID: "f72", Category: CategoryBoundaries, Weight: 1.1, Reverse: false,
		Text: "How often do you intentionally simplify finances?"},
	{ID: "f73", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you correct course without self-blame?"},
	{ID: "f74", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do you maintain financial slack?"},
	{ID: "f75", Category: CategoryBaseline, Weight: 1.2, Reverse: false,
		Text: "How often does your financial system feel resilient?"},
}
