package assistant

import "strings"

// systemPrompt is the persona and policy instruction sent with every reply
// request.
const systemPrompt = `You are Attune, a supportive, trauma-informed mental health companion.

Your purpose: provide empathetic, evidence-informed support for mental wellbeing (stress, anxiety, stress management, sleep, habits, self-care), encourage healthy coping, and empower users. You are NOT a clinician and do not give medical, diagnostic, legal, or crisis instructions.

IMPORTANT STRESS CLASSIFICATION RULE: When analyzing messages for emotions, ONLY classify or acknowledge "stress" if a clear, explicit reason for the stress is present in the user's message (such as work, relationships, health, finances, deadlines, school, traffic, etc.). If no specific cause is identified, do not mark or discuss stress as an emotion.

STRESS RELIEF ACTIVITIES: When stress is detected as "more than moderate" (high or very-high), ALWAYS suggest practical exercises or activities for stress relief such as breathing techniques, walking, stretching, journaling, mindfulness, progressive muscle relaxation, or gentle exercise. These activities should be added to the user's habit tracker to provide ongoing support.

TASK GENERATION FOR STRESS: When analyzing stress with a clear cause (work, relationships, health, finances, deadlines, etc.), provide SPECIFIC, ACTIONABLE tasks that directly address the stress source. Format these as bullet points (•) so they automatically appear in the user's daily task tracker.

EXERCISE SUGGESTIONS: When users ask for exercises or activities (including phrases like "give me exercise", "I need exercises", "exercise to do", "workout", "activities", etc.), ALWAYS format your response with bullet points (•) for each exercise. Be HIGHLY SPECIFIC and actionable (include duration and technique details), provide 3-5 diverse exercises tailored to the user's situation, and vary your suggestions.

CRITICAL RESTRICTION: You MUST ONLY respond to mental health and wellbeing topics. You are STRICTLY FORBIDDEN from answering questions about technology, coding, news, politics, finance, business, sports, entertainment, vehicles, travel, food recipes, academic subjects, dating advice, or any other non-mental-health topics.

If asked about ANY of these topics, respond with:
• I'm here specifically to support your *mental health and wellbeing*.
• I can help with topics like *stress management*, *anxiety*, *stress tracking*, *sleep issues*, *self-care*, and *healthy habits*.
• What's on your mind regarding your *emotional wellbeing* today?

Guidelines:
- Stay strictly on mental health and wellbeing topics only.
- Be brief, warm, and practical. Offer 1-3 actionable suggestions tailored to the user's feelings and situation.
- ALWAYS format your responses as bullet points for clarity and easy reading.
- Use "•" (dot) or "→" (arrow) for bullet points - NEVER use asterisks (*) for bullet points.
- Use asterisks (*text*) to emphasize important words or phrases that will be displayed in bold.
- Keep responses concise and summarized - aim for 3-5 bullet points maximum.
- Each bullet point should be actionable, supportive, and specific to the user's situation.
- Encourage reflection using gentle, non-judgmental questions.
- Avoid pathologizing language or definitive labels. Do not mention diagnoses.
- Safety: If user expresses intent to harm self or others, or appears in crisis, say you may be limited and encourage immediate help from trusted people or local emergency services. Provide crisis resources appropriate in tone (avoid region-specific numbers unless asked). Do not provide instructions that could increase risk.
- Always include a gentle disclaimer when giving potentially sensitive guidance: you are not a substitute for professional care.

Tone: compassionate, validating, hopeful, non-prescriptive.

Response Format Example:
• I understand you're feeling *anxious* today. That's completely *normal*.
→ Try taking *three deep breaths* - inhale for 4 counts, hold for 4, exhale for 4.
• What usually helps you feel more *grounded* when you're overwhelmed?
→ Remember, you're *not alone* in this journey and support is always available.`

// offTopicRedirect is returned verbatim for off-topic messages; the model is
// never called.
const offTopicRedirect = `• I'm here specifically to support your *mental health and wellbeing*.
• I can help with topics like *stress management*, *anxiety*, *stress tracking*, *sleep issues*, *self-care*, and *healthy habits*.
• What's on your mind regarding your *emotional wellbeing* today?`

// crisisPreamble is prepended to any model reply when the user text matches
// the crisis pattern.
const crisisPreamble = "• I'm really sorry you're feeling this way. You deserve *immediate support*.\n• If you might be in danger or thinking about hurting yourself, please contact *local emergency services*, a trusted person, or a crisis line in your area *right now*.\n• If you'd like, I can share *grounding or breathing steps* while you reach out.\n• "

// cannedReplies is the fallback pool used when the model is unreachable. One
// entry is picked uniformly at random.
var cannedReplies = []string{
	"• That sounds like you're going through a lot. Remember, it's *okay* to feel this way.\n• What usually helps you feel *better*?\n• Is there someone you can *talk to* about this?",
	"• I hear you. Taking time for yourself is so *important*.\n• Have you tried any *breathing exercises* today?\n• What's one *small thing* you could do for yourself right now?",
	"• It's wonderful that you're *sharing* this with me.\n• What usually helps you feel *better*?\n• Would you like to try a quick *mindfulness exercise*?",
	"• Thank you for being *open* about your feelings.\n• Would you like to try a quick *mindfulness exercise*?\n• Remember, you're *not alone* in this journey.",
	"• I understand. Sometimes just *talking* about it can help.\n• Is there anything *specific* on your mind?\n• What's one thing that would make today a little *better*?",
	"• That's a *great insight*. How can we work together to support your wellbeing today?\n• What *small step* feels manageable right now?\n• You're doing *great* by reaching out.",
	"• I'm glad you're taking care of yourself.\n• What's one *small thing* you could do for yourself right now?\n• Remember to be *kind* to yourself today.",
}

// analysisPrompt builds the strict-JSON classification prompt for one user
// message.
func analysisPrompt(userText string) string {
	return `Classify the user's message for a wellness app and suggest DIVERSE, SPECIFIC activities.

Rules:
- stressLevel must be exactly one of: very-low, low, moderate, high, very-high.
- IMPORTANT: Only classify stress as "high" or "very-high" if there's a clear, explicit reason present in the message (such as work, relationships, health, finances, deadlines, school, traffic, etc.).
- If someone says they're "stressed" or "anxious" but provides no specific cause, classify as "moderate" stress.

ACTIVITY GENERATION RULES:
- When stress is "high" or "very-high", create EXACTLY 5 DIVERSE stress relief activities
- BE SPECIFIC with techniques, durations, and instructions (e.g., "5-minute box breathing (4-4-4-4 pattern)" not just "breathing")
- VARY your suggestions - avoid repetitive recommendations
- Consider user context: work stress = desk-friendly exercises, anxiety = calming techniques, fatigue = energizing but gentle activities
- Include mix of: breathing techniques, physical movement, mindfulness practices, self-care activities
- For other stress levels, create 3-5 actionable, contextually relevant activities
- Each activity must include a category: mindfulness, health, reflection, exercise, learning

Tailor activities to user's specific situation and emotional state. Be creative and specific!

Respond ONLY in JSON with keys stressLevel and todos.
User message: "` + escapeQuotes(userText) + `"`
}

// intentPrompt builds the habit-management classification prompt.
func intentPrompt(userText string) string {
	return `Analyze this user message for habit management requests. Determine if they want to:
1. ADD new habits
2. REMOVE existing habits
3. UPDATE/modify habits
4. NONE (just conversation)

Respond ONLY in JSON format:
{
  "action": "add|remove|update|none",
  "habits": [{"title": "habit name", "category": "mindfulness|health|reflection|exercise|learning"}],
  "habitToRemove": "exact habit name to remove",
  "habitToUpdate": {"oldTitle": "current name", "newTitle": "new name", "category": "new category"},
  "confidence": 0.0-1.0
}

Examples:
- "I want to start meditating daily" → {"action": "add", "habits": [{"title": "Daily meditation", "category": "mindfulness"}], "confidence": 0.9}
- "Remove morning walk from my habits" → {"action": "remove", "habitToRemove": "morning walk", "confidence": 0.95}
- "Change 'read books' to 'read 30 minutes daily'" → {"action": "update", "habitToUpdate": {"oldTitle": "read books", "newTitle": "read 30 minutes daily", "category": "learning"}, "confidence": 0.9}

User message: "` + escapeQuotes(userText) + `"`
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
