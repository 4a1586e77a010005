package email

// reply builds the nullable suggested-reply field for fixture literals.
func reply(s string) *string {
	return &s
}

// FixtureAccounts returns the static account reference set.
func FixtureAccounts() []Account {
	return []Account{
		{ID: "acc-1", Name: "work@company.com", Email: "work@company.com"},
		{ID: "acc-2", Name: "personal@email.com", Email: "personal@email.com"},
	}
}

// FixtureFolders returns the closed folder enumeration.
func FixtureFolders() []Folder {
	return []Folder{
		{ID: "inbox", Name: "Inbox"},
		{ID: "sent", Name: "Sent"},
		{ID: "drafts", Name: "Drafts"},
		{ID: "spam", Name: "Spam"},
		{ID: "archive", Name: "Archive"},
	}
}

// FixtureEmails returns the sample mailbox used in place of a real backend.
// Spam records intentionally carry an empty suggested reply.
func FixtureEmails() []Email {
	return []Email{
		{
			ID:        "1",
			AccountID: "acc-1",
			Folder:    "inbox",
			From:      "sarah.chen@acmecorp.com",
			To:        "work@company.com",
			Subject:   "Partnership Opportunity - AI Platform Integration",
			Body: `Hi,

I'm Sarah from Acme Corp. We're building an AI-powered analytics platform and we're looking for potential integration partners.

I came across your product and I think there's a great synergy between our solutions. Would you be interested in scheduling a call next week to discuss a potential partnership?

We've successfully partnered with companies like TechFlow and DataSync, and I believe we could create similar value together.

Looking forward to hearing from you!

Best regards,
Sarah Chen
Head of Partnerships, Acme Corp`,
			Date:           "2024-10-20T14:30:00Z",
			SuggestedReply: reply("Thanks for reaching out, Sarah! I'm interested in learning more about the partnership opportunity. I'm available for a call next week - Tuesday or Thursday afternoon works best for me. Please share some time slots that work for you."),
		},
		{
			ID:        "2",
			AccountID: "acc-1",
			Folder:    "inbox",
			From:      "deals@superoffers.biz",
			To:        "work@company.com",
			Subject:   "🎉 AMAZING OFFER!!! LIMITED TIME ONLY!!!",
			Body: `CONGRATULATIONS!!!

You have been selected for an EXCLUSIVE opportunity to make $10,000 per week from home!!!

Click here NOW: http://suspicious-link-123.biz

This offer expires in 24 HOURS!!! Don't miss out on this INCREDIBLE opportunity!!!

ACT NOW before it's too late!!!

🚀🚀🚀 GUARANTEED RESULTS 🚀🚀🚀`,
			Date:           "2024-10-21T09:15:00Z",
			SuggestedReply: reply(""),
		},
		{
			ID:        "3",
			AccountID: "acc-2",
			Folder:    "inbox",
			From:      "john.davis@clientcompany.com",
			To:        "personal@email.com",
			Subject:   "Re: Demo Request",
			Body: `Hi,

Thank you for reaching out about the demo. Unfortunately, we've decided to go with another vendor for our current needs.

We appreciate your time and will keep you in mind for future opportunities.

Best regards,
John Davis`,
			Date:           "2024-10-19T16:45:00Z",
			SuggestedReply: reply("Thank you for letting me know, John. I appreciate you taking the time to respond. If your needs change in the future or if you'd like to explore other solutions, please don't hesitate to reach out."),
		},
		{
			ID:        "4",
			AccountID: "acc-1",
			Folder:    "inbox",
			From:      "meeting-scheduler@calendar.com",
			To:        "work@company.com",
			Subject:   "Meeting Confirmed: Product Demo - Tuesday 2PM",
			Body: `Hi,

This is to confirm our meeting scheduled for:

Date: Tuesday, October 24th, 2024
Time: 2:00 PM - 3:00 PM EST
Location: Zoom (link will be sent 15 minutes before)

I've added this to my calendar and I'm looking forward to seeing the demo of your product.

See you then!

Best,
Michael Rodriguez
VP of Engineering`,
			Date:           "2024-10-22T10:00:00Z",
			SuggestedReply: reply("Perfect! I've confirmed the meeting on my calendar as well. Looking forward to our demo session on Tuesday at 2 PM EST. See you then, Michael!"),
		},
		{
			ID:        "5",
			AccountID: "acc-2",
			Folder:    "inbox",
			From:      "lisa.wong@startup.io",
			To:        "personal@email.com",
			Subject:   "Quick Question",
			Body: `Hey,

I saw your recent blog post about API integration best practices. Interesting stuff!

I might have some questions about implementing something similar. Let me think about it and I'll get back to you.

Thanks,
Lisa`,
			Date:           "2024-10-21T11:20:00Z",
			SuggestedReply: reply("Thanks for reading, Lisa! Feel free to reach out whenever you have questions - I'm happy to discuss API integration or any related topics. Looking forward to hearing from you."),
		},
		{
			ID:        "6",
			AccountID: "acc-1",
			Folder:    "spam",
			From:      "promotions@newsletter.com",
			To:        "work@company.com",
			Subject:   "You Won't Believe These Prices!",
			Body: `Dear Valued Customer,

CHECK OUT THESE UNBELIEVABLE DEALS!!!

⭐ 90% OFF Everything!
⭐ Free Shipping Worldwide!
⭐ Buy 1 Get 10 FREE!

Click here to claim your discount: http://sketchy-deals.xyz

Offer valid for next 2 hours only!!! HURRY!!!

Unsubscribe | Privacy Policy | Contact Us`,
			Date:           "2024-10-20T08:30:00Z",
			SuggestedReply: reply(""),
		},
		{
			ID:        "7",
			AccountID: "acc-2",
			Folder:    "inbox",
			From:      "robert.kim@enterprise.com",
			To:        "personal@email.com",
			Subject:   "Enterprise License Inquiry",
			Body: `Hello,

We're a team of 50+ developers and we're very interested in your enterprise solution.

Could you send us:
1. Enterprise pricing details
2. Feature comparison vs. standard plan
3. Available support options
4. Implementation timeline

We're looking to make a decision by end of month. Would it be possible to schedule a call this week to discuss further?

Thanks,
Robert Kim
CTO, Enterprise Solutions Inc.`,
			Date:           "2024-10-22T13:15:00Z",
			SuggestedReply: reply("Hi Robert, I'd be happy to provide all the enterprise details and schedule a call this week. I'll send over a comprehensive comparison document within the next hour. Are you available for a call on Thursday or Friday afternoon?"),
		},
		{
			ID:        "8",
			AccountID: "acc-1",
			Folder:    "inbox",
			From:      "events@techconf.org",
			To:        "work@company.com",
			Subject:   "Speaker Invitation - TechConf 2024",
			Body: `Hi there,

We'd love to have you speak at TechConf 2024 in San Francisco (December 5-7).

Your work on AI integration has caught our attention, and we think our audience would greatly benefit from your insights.

The session would be 45 minutes + 15 minutes Q&A. We cover travel and accommodation.

Are you interested? If so, I can send over more details.

Best,
Amanda Foster
Event Coordinator, TechConf`,
			Date:           "2024-10-18T14:00:00Z",
			SuggestedReply: reply("Hi Amanda, thank you for the invitation! I'm very interested in speaking at TechConf 2024. Please send over the details including topic expectations and schedule. I look forward to participating!"),
		},
		{
			ID:        "9",
			AccountID: "acc-2",
			Folder:    "inbox",
			From:      "support-request@customer.com",
			To:        "personal@email.com",
			Subject:   "Issue with API Integration",
			Body: `Hi,

We've been trying to integrate your API for the past few days but we're running into authentication errors.

Error: "Invalid API key" even though we're using the key from our dashboard.

Could you please help us troubleshoot this?

Thanks,
Developer Team`,
			Date:           "2024-10-21T15:30:00Z",
			SuggestedReply: reply("I'm sorry to hear you're experiencing authentication issues. Let's troubleshoot this right away. Could you please verify you're using the latest API key from your dashboard and check if there are any extra spaces? I'll also check our system logs on my end."),
		},
		{
			ID:        "10",
			AccountID: "acc-1",
			Folder:    "inbox",
			From:      "calendar@meeting.com",
			To:        "work@company.com",
			Subject:   "Meeting Update: Weekly Sync moved to Thursday 3PM",
			Body: `Hello,

Just a quick update - our weekly sync meeting has been moved from Wednesday to Thursday at 3PM.

I've updated the calendar invite. Let me know if this time doesn't work for you.

Thanks!
Jessica`,
			Date:           "2024-10-22T09:00:00Z",
			SuggestedReply: reply("Thanks for the update, Jessica! Thursday at 3PM works perfectly for me. See you then!"),
		},
		{
			ID:        "11",
			AccountID: "acc-2",
			Folder:    "spam",
			From:      "marketing@competitor.com",
			To:        "personal@email.com",
			Subject:   "Why Our Product is Better",
			Body: `Hi,

We noticed you're in the same industry and wanted to reach out.

Our product offers:
- 10x faster performance
- 50% lower cost
- Better support

Why not give us a try? First month is FREE!

Click here to sign up: http://competitor.com/signup

Best,
Marketing Team`,
			Date:           "2024-10-19T10:45:00Z",
			SuggestedReply: reply(""),
		},
		{
			ID:        "12",
			AccountID: "acc-1",
			Folder:    "inbox",
			From:      "jane.patterson@bigclient.com",
			To:        "work@company.com",
			Subject:   "Thanks for the great service!",
			Body: `Hi,

I just wanted to send a quick note to say thank you for the excellent support over the past quarter.

Your team has been incredibly responsive and the product has exceeded our expectations. We're definitely interested in expanding our usage next year.

I'll be in touch in a few weeks to discuss renewal and potential add-ons.

Best regards,
Jane Patterson
Director of Operations`,
			Date:           "2024-10-20T16:20:00Z",
			SuggestedReply: reply("Thank you so much for the kind words, Jane! We're thrilled that you're happy with our service. I look forward to discussing expansion opportunities when you're ready. Please reach out anytime!"),
		},
		{
			ID:        "13",
			AccountID: "acc-1",
			Folder:    "sent",
			From:      "work@company.com",
			To:        "client@example.com",
			Subject:   "Re: Project Proposal",
			Body: `Hi,

Thank you for your interest in our services. I've attached the project proposal as requested.

Please review and let me know if you have any questions.

Best regards`,
			Date:           "2024-10-21T14:00:00Z",
			SuggestedReply: reply("This is a sent email - no reply needed."),
		},
		{
			ID:        "14",
			AccountID: "acc-2",
			Folder:    "drafts",
			From:      "personal@email.com",
			To:        "friend@email.com",
			Subject:   "Draft: Catch up soon",
			Body: `Hey,

It's been a while! We should catch up soon.

[Draft - not sent yet]`,
			Date:           "2024-10-22T11:00:00Z",
			SuggestedReply: reply("This is a draft - complete and send when ready."),
		},
		{
			ID:        "15",
			AccountID: "acc-1",
			Folder:    "archive",
			From:      "old-client@archive.com",
			To:        "work@company.com",
			Subject:   "Project Completion Report",
			Body: `Hi,

Attached is the final project completion report from Q2.

All deliverables have been met successfully.

Thanks for the partnership!`,
			Date:           "2024-06-30T16:00:00Z",
			SuggestedReply: reply("Thank you for the comprehensive report! It was a pleasure working together on this project. Looking forward to future collaborations."),
		},
	}
}
