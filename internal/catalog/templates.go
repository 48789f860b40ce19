package catalog

// Free-text templates rendered by the text collaborator. Placeholders use
// {name} syntax.

var RFISubjects = []string{
	"Coordination conflict with electrical conduit at grid {grid}",
	"Clarification needed on diffuser layout for {room}",
	"Structural penetration approval required at {location}",
	"Equipment access clearance insufficient per spec",
	"Ductwork routing conflicts with beam at elevation {elev}",
	"Control sequence clarification for {system}",
	"Pipe sleeve size discrepancy at {location}",
	"Seismic bracing requirements for equipment over {weight} lbs",
	"Fire damper location verification needed",
	"Insulation spec clarification for exterior application",
	"VAV box sizing appears undersized for zone CFM",
	"Refrigerant piping routing through {area} - approval needed",
	"Existing conditions differ from drawings at {location}",
	"Thermostat location conflicts with furniture layout",
	"Access panel requirements for concealed valves",
}

// ChangeOrderReason pairs a reason category with the description template it
// renders. The category drives the value band: Value Engineering is a
// credit, Owner Request and Scope Gap are larger adds.
type ChangeOrderReason struct {
	Category string
	Template string
}

var ChangeOrderReasons = []ChangeOrderReason{
	{Category: "Owner Request", Template: "Added {item} per owner directive"},
	{Category: "Design Error", Template: "Drawings showed incorrect {dimension} - field correction required"},
	{Category: "Unforeseen Condition", Template: "Discovered {condition} not shown on documents"},
	{Category: "Coordination", Template: "Rerouting required due to {trade} conflict"},
	{Category: "Code Compliance", Template: "Inspector required {requirement}"},
	{Category: "Value Engineering", Template: "Substitution approved: {old_item} to {new_item}"},
	{Category: "Scope Gap", Template: "Work not clearly defined in bid documents"},
	{Category: "Acceleration", Template: "Premium time to maintain schedule"},
}

var FieldNoteTemplates = []string{
	"Crew arrived {time}. Weather: {weather}. {crew_count} workers on site. Focus today: {task}. {observation}",
	"Safety meeting held at start of shift - topic: {safety_topic}. All PPE verified. {work_description}",
	"Received delivery of {material} - {qty} units. {receipt_note}. Staged at {location}.",
	"Met with {trade} foreman re: coordination. {meeting_outcome}. Action items: {actions}",
	"GC weekly meeting - discussed {topics}. Schedule status: {schedule_status}. RFIs pending: {rfi_count}.",
	"Installed {qty2} {units} on floor {floor}. {quality_note}. Inspections needed: {inspections}.",
	"Equipment startup for {equipment}. {startup_result}. Punch list items: {punch_items}.",
	"{issue_type} encountered: {issue_description}. Resolution: {resolution}. Impact: {impact}.",
	"Working in {work_zone} - {progress_pct}% complete this zone. Remaining: {remaining_work}.",
	"TAB contractor on site - balancing {tab_system}. Initial readings: {readings}. Adjustments: {adjustments}.",
}

var RFIResponseSummaries = []string{
	"Proceed as noted in attached sketch.",
	"Refer to ASI-{asi} for clarification.",
	"Approved as submitted.",
	"Revise per attached markup.",
	"Coordinate with {trade} contractor.",
}
