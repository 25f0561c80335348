package utils

import (
	"fmt"
	"time"
)

func SendTripInviteEmail(to, tripName, inviterEmail, inviteURL string, expiresAt time.Time) error {
	subject := fmt.Sprintf("✈️ You're invited to plan '%s' on TripMate!", tripName)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
	<meta charset="UTF-8" />
	<meta name="viewport" content="width=device-width, initial-scale=1.0" />
	<title>Trip Invitation</title>
	<style>
		body {
			font-family: 'Segoe UI', Roboto, Arial, sans-serif;
			background-color: #f4f7fb;
			margin: 0;
			padding: 0;
			color: #333333;
		}
		.container {
			max-width: 480px;
			margin: 25px auto;
			background: #ffffff;
			border-radius: 12px;
			box-shadow: 0 4px 16px rgba(0, 0, 0, 0.08);
			overflow: hidden;
			border-top: 5px solid #1d4e89;
		}
		.header {
			background-color: #1d4e89;
			color: #ffffff;
			text-align: center;
			padding: 18px 12px;
		}
		.header h1 {
			margin: 0;
			font-size: 18px;
			font-weight: 600;
		}
		.content {
			padding: 20px 18px;
		}
		.message {
			font-size: 13px;
			line-height: 1.5;
			color: #444444;
			margin-bottom: 14px;
		}
		.trip-box {
			background: #f6faff;
			border: 1px solid #d6e4f2;
			border-radius: 8px;
			padding: 12px 14px;
			margin: 16px 0;
		}
		.trip-box h3 {
			margin: 0;
			color: #1d4e89;
			font-size: 15px;
		}
		.btn {
			display: inline-block;
			background-color: #1d4e89;
			color: #ffffff !important;
			text-decoration: none;
			font-size: 14px;
			font-weight: 600;
			padding: 10px 22px;
			border-radius: 6px;
			margin: 18px 0;
			text-align: center;
		}
		.expiry {
			margin-top: 16px;
			font-size: 12px;
			color: #888888;
		}
		.footer {
			background: #f0f4f9;
			text-align: center;
			padding: 14px;
			font-size: 12px;
			color: #777777;
			border-top: 1px solid #e5e5e5;
		}
	</style>
	</head>

	<body>
		<div class="container">
			<div class="header">
				<h1>You're Invited!</h1>
			</div>

			<div class="content">
				<p class="message">
					<b>%s</b> has invited you to plan the trip <b>%s</b> together on <b>TripMate</b> —
					shared itineraries, documents and expense tracking in one place.
				</p>

				<div class="trip-box">
					<h3>%s</h3>
				</div>

				<div style="text-align: center;">
					<a href="%s" class="btn">Join Trip</a>
				</div>

				<p class="expiry">
					This invitation link expires on <b>%s</b>.
				</p>
			</div>

			<div class="footer">
				&copy; %d TripMate — Plan together, travel better.
			</div>
		</div>
	</body>
	</html>
	`, inviterEmail, tripName, tripName, inviteURL, expiresAt.Format("3:04 PM, Jan 2 2006"), time.Now().Year())

	return SendEmail(to, subject, body)
}
