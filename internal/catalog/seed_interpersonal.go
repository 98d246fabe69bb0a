package catalog

// interpersonalQuestions is the Interpersonal lens question bank.
var interpersonalQuestions = []Question{
	{ID: "i01", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often do you feel tense before interacting with a specific person?"},
	{ID: "i02", Category: CategoryBaseline, Weight: 1.3, Reverse: true,
		Text: "How often does one conversation ruin your whole day?"},
	{ID: "i03", Category: CategoryExecution, Weight: 1.2, Reverse: true,
		Text: "How often do you avoid a conversation you know you need to have?"},
	{ID: "i04", Category: CategoryClarity, Weight: 1.3, Reverse: false,
		Text: "How clear are you about what you want from this relationship/situation?"},
	{ID: "i05", Category: CategoryClarity, Weight: 1.1, Reverse: true,
		Text: "How often do you leave a talk unsure what was actually decided?"},
	{ID: "i06", Category: CategoryBoundaries, Weight: 1.4, Reverse: true,
		Text: "How often do you say “yes” when you mean “no”?"},
	{ID: "i07", Category: CategoryBoundaries, Weight: 1.3, Reverse: true,
		Text: "How often do you tolerate behavior that you resent later?"},
	{ID: "i08", Category: CategoryBoundaries, Weight: 1.2, Reverse: false,
		Text: "How often do you communicate your limits early rather than late?"},
	{ID: "i09", Category: CategoryResources, Weight: 1.1, Reverse: false,
		Text: "How supported do you feel by at least one person in your life?"},
	{ID: "i10", Category: CategoryResources, Weight: 1.2, Reverse: true,
		Text: "How often do you feel alone carrying the emotional load?"},
	{ID: "i11", Category: CategoryFeedback, Weight: 1.2, Reverse: true,
		Text: "How often do conflicts repeat without resolution?"},
	{ID: "i12", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you reflect after conflict and adjust your approach?"},
	{ID: "i13", Category: CategoryFeedback, Weight: 1.0, Reverse: true,
		Text: "How often do you interpret neutral behavior as hostile?"},
	{ID: "i14", Category: CategoryBoundaries, Weight: 1.1, Reverse: true,
		Text: "How often do you apologize to restore peace even when you weren’t wrong?"},
	{ID: "i15", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you directly ask for what you need?"},
	{ID: "i16", Category: CategoryBaseline, Weight: 1.0, Reverse: true,
		Text: "How often do you replay conversations in your head afterward?"},
	{ID: "i17", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you feel respected in the dynamic?"},
	{ID: "i18", Category: CategoryExecution, Weight: 1.3, Reverse: false,
		Text: "How often do you keep your word when you set a boundary?"},
	{ID: "i19", Category: CategoryExecution, Weight: 1.1, Reverse: true,
		Text: "How often do you use sarcasm/withdrawal instead of stating the issue?"},
	{ID: "i20", Category: CategoryClarity, Weight: 1.0, Reverse: true,
		Text: "How often do you feel you must perform to be valued?"},
	{ID: "i21", Category: CategoryExecution, Weight: 1.0, Reverse: false,
		Text: "How often do you choose timing/location to improve the odds of a good talk?"},
	{ID: "i22", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you communicate expectations before frustration builds?"},
	{ID: "i23", Category: CategoryBaseline, Weight: 1.1, Reverse: false,
		Text: "How often do you recover quickly after conflict?"},
	{ID: "i24", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you ask clarifying questions instead of assuming intent?"},
	{ID: "i25", Category: CategoryBaseline, Weight: 1.3, Reverse: true,
		Text: "How often do you feel you’re walking on eggshells?"},
	{ID: "i26", Category: CategoryBaseline, Weight: 1.2, Reverse: true,
		Text: "How often do you feel braced or guarded before contact?"},
	{ID: "i27", Category: CategoryBoundaries, Weight: 1.3, Reverse: true,
		Text: "How often do you feel responsible for managing the other person’s emotions?"},
	{ID: "i28", Category: CategoryClarity, Weight: 1.1, Reverse: true,
		Text: "How often do conversations drift instead of landing decisions?"},
	{ID: "i29", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you initiate repair after tension?"},
	{ID: "i30", Category: CategoryBoundaries, Weight: 1.2, Reverse: true,
		Text: "How often do you suppress irritation to keep things smooth?"},
	{ID: "i31", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you feel heard without needing to escalate?"},
	{ID: "i32", Category: CategoryExecution, Weight: 1.1, Reverse: true,
		Text: "How often do you delay speaking until the moment has passed?"},
	{ID: "i33", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you clarify expectations before conflict arises?"},
	{ID: "i34", Category: CategoryResources, Weight: 1.1, Reverse: false,
		Text: "How often do you feel emotionally safe being direct?"},
	{ID: "i35", Category: CategoryFeedback, Weight: 1.1, Reverse: true,
		Text: "How often do you feel blamed for things you didn’t cause?"},
	{ID: "i36", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you notice patterns repeating across different relationships?"},
	{ID: "i37", Category: CategoryBoundaries, Weight: 1.3, Reverse: true,
		Text: "How often do you hold back truth to avoid reaction?"},
	{ID: "i38", Category: CategoryBaseline, Weight: 1.1, Reverse: true,
		Text: "How often do you feel relief when distance increases?"},
	{ID: "i39", Category: CategoryBoundaries, Weight: 1.1, Reverse: false,
		Text: "How often do you set terms before agreeing to help?"},
	{ID: "i40", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you leave interactions clearer than when you entered?"},
	{ID: "i41", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you address small issues before they stack?"},
	{ID: "i42", Category: CategoryBaseline, Weight: 1.1, Reverse: true,
		Text: "How often do you feel obligated rather than willing?"},
	{ID: "i43", Category: CategoryExecution, Weight: 1.1, Reverse: false,
		Text: "How often do you explicitly close a conversation with next steps?"},
	{ID: "i44", Category: CategoryFeedback, Weight: 1.2, Reverse: true,
		Text: "How often do you question your own perception after conflict?"},
	{ID: "i45", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you feel mutual effort in repair?"},
	{ID: "i46", Category: CategoryClarity, Weight: 1.1, Reverse: true,
		Text: "How often do you avoid topics that matter to you?"},
	{ID: "i47", Category: CategoryBaseline, Weight: 1.0, Reverse: false,
		Text: "How often do you rest instead of ruminating after interaction?"},
	{ID: "i48", Category: CategoryBoundaries, Weight: 1.2, Reverse: false,
		Text: "How often do you say what you mean without softening it excessively?"},
	{ID: "i49", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you recalibrate behavior after feedback?"},
	{ID: "i50", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do relationships feel net-supportive rather than draining?"},
	{ID: "i51", Category: CategoryFeedback, Weight: 1.2, Reverse: true,
		Text: "How often do you notice resentment building before you name it?"},
	{ID: "i52", Category: CategoryBaseline, Weight: 1.1, Reverse: false,
		Text: "How often do you recover quickly after interpersonal strain?"},
	{ID: "i53", Category: CategoryClarity, Weight: 1.2, Reverse: true,
		Text: "How often do you feel conversations require translation instead of clarity?"},
	{ID: "i54", Category: CategoryExecution, Weight: 1.0, Reverse: false,
		Text: "How often do you address tone instead of content when tension arises?"},
	{ID: "i55", Category: CategoryResources, Weight: 1.2, Reverse: true,
		Text: "How often do you feel relational effort is uneven?"},
	{ID: "i56", Category: CategoryBoundaries, Weight: 1.3, Reverse: false,
		Text: "How often do you say no without justification?"},
	{ID: "i57", Category: CategoryFeedback, Weight: 1.1, Reverse: true,
		Text: "How often do misunderstandings persist longer than necessary?"},
	{ID: "i58", Category: CategoryExecution, Weight: 1.1, Reverse: true,
		Text: "How often do you revisit unresolved conversations?"},
	{ID: "i59", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do you feel relationally resourced rather than depleted?"},
	{ID: "i60", Category: CategoryFeedback, Weight: 1.0, Reverse: false,
		Text: "How often do you check assumptions before reacting?"},
	{ID: "i61", Category: CategoryBoundaries, Weight: 1.2, Reverse: true,
		Text: "How often do you feel pressure to maintain harmony at your expense?"},
	{ID: "i62", Category: CategoryClarity, Weight: 1.2, Reverse: false,
		Text: "How often do you name patterns instead of incidents?"},
	{ID: "i63", Category: CategoryBaseline, Weight: 1.1, Reverse: false,
		Text: "How often do you feel conversations reset rather than compound?"},
	{ID: "i64", Category: CategoryResources, Weight: 1.2, Reverse: false,
		Text: "How often do you feel safe disagreeing?"},
	{ID: "i65", Category: CategoryBaseline, Weight: 1.1, Reverse: true,
		Text: "How often do you delay resolution due to emotional fatigue?"},
	{ID: "i66", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you follow through on relational agreements?"},
	{ID: "i67", Category: CategoryClarity, Weight: 1.1, Reverse: false,
		Text: "How often do you feel conversations end cleanly?"},
	{ID: "i68", Category: CategoryBoundaries, Weight: 1.2, Reverse: true,
		Text: "How often do you absorb blame to keep peace?"},
	{ID: "i69", Category: CategoryFeedback, Weight: 1.2, Reverse: false,
		Text: "How often do you experience mutual accountability?"},
	{ID: "i70", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do you exit interactions with increased trust?"},
	{ID: "i71", Category: CategoryFeedback, Weight: 1.1, Reverse: false,
		Text: "How often do you recognize emotional debt accumulating?"},
	{ID: "i72", Category: CategoryBoundaries, Weight: 1.2, Reverse: false,
		Text: "How often do you state needs without apology?"},
	{ID: "i73", Category: CategoryBaseline, Weight: 1.2, Reverse: false,
		Text: "How often do you feel relational stability across time?"},
	{ID: "i74", Category: CategoryExecution, Weight: 1.2, Reverse: false,
		Text: "How often do you resolve issues before they resurface?"},
	{ID: "i75", Category: CategoryResources, Weight: 1.3, Reverse: false,
		Text: "How often do relationships feel directionally improving?"},
}
