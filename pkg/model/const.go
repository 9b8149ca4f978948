/*
 * Copyright 2026 RAKwireless Technology Limited
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package model

const InquiryPath = "/inquiry"
const SupportTicketPath = "/support-ticket"

// ProblemTypes maps the support form problem type keys to the labels shown
// in tickets and in the UI.
var ProblemTypes = map[string]string{
	"connectivity":  "Connectivity Issues (LoRaWAN, Wi-Fi, Cellular)",
	"installation":  "Installation Problems / Setup Help",
	"configuration": "Device/Gateway Configuration",
	"hardware":      "Hardware Malfunction / Defect",
	"software":      "Software / Firmware Issues / Bugs",
	"other":         "Other Issue / General Question",
}

var UrgencyLevels = map[string]string{
	"low":    "Low - General question or minor issue",
	"medium": "Medium - Affecting functionality, workaround may exist",
	"high":   "High - Critical system down or major impact",
}

var SupportMethods = map[string]string{
	"email":  "Email Support",
	"phone":  "Phone Support",
	"remote": "Remote Assistance",
}

// DeviceModels lists the RAK hardware offered in the support form device
// selector, plus the generic fallback entries.
var DeviceModels = []string{
	"RAK7268 Wisgate Edge Lite 2",
	"RAK7271 WisGate Edge Prime",
	"RAK7289 WisGate Edge Pro",
	"RAK7258 WisGate Edge",
	"RAK7249 WisGate Edge Max",
	"RAK7240 WisGate Edge Prime",
	"RAK7268C WisGate Edge Lite 2",
	"RAK7391 WisBlock Base Board Pro",
	"RAK5010 WisTrio NB-IoT Tracker",
	"RAK4631 WisBlock Core",
	"RAK4200 WisDuo LPWAN Module",
	"RAK4270 WisDuo LPWAN Module",
	"RAK3172 WisDuo LPWAN Module",
	"RAK11300 WisBlock Core",
	"RAK11200 WisBlock Core",
	"RAK11720 Module",
	"RAK12500 WisBlock Sensor",
	"RAK2013 Cellular NB-IoT",
	"Other RAK Device",
	"Non-RAK Device",
	"Unknown / Not Applicable",
}

// Regions pairs each selectable deployment region with its LoRaWAN
// regulatory frequency band.
var Regions = []Region{
	{Name: "North America", FrequencyBand: "US915"},
	{Name: "Europe", FrequencyBand: "EU868"},
	{Name: "Asia Pacific", FrequencyBand: "AS923"},
	{Name: "Australia", FrequencyBand: "AU915"},
	{Name: "Korea", FrequencyBand: "KR920"},
	{Name: "India", FrequencyBand: "IN865"},
	{Name: "Russia", FrequencyBand: "RU864"},
	{Name: "Other / Unsure", FrequencyBand: "Check Regional Parameters"},
}

var ApplicationTypes = []ApplicationTypeInfo{
	{
		Type:     "Monitoring",
		Subtypes: []string{"Temperature", "Humidity", "Air Quality", "Water Quality", "Vibration", "Pressure", "Light", "Motion", "Presence", "Energy", "Level Sensing", "Other"},
	},
	{
		Type:     "Asset Tracking",
		Subtypes: []string{"GPS Tracking", "BLE Beacons", "LoRaWAN Geolocation", "Indoor Positioning", "Fleet Management", "Livestock Tracking", "Other"},
	},
	{
		Type:     "Control & Automation",
		Subtypes: []string{"Actuators", "Smart Relays", "Smart Switches", "Valve Control", "Motor Control", "Lighting Control", "Building Automation", "Other"},
	},
	{
		Type:     "Gateway & Network",
		Subtypes: []string{"Public Network Gateway", "Private Network Gateway", "Network Server", "Connectivity Solutions", "Mesh Network", "Other"},
	},
	{
		Type:     "Smart Agriculture",
		Subtypes: []string{"Soil Monitoring", "Climate Monitoring", "Irrigation Control", "Pest Detection", "Other"},
	},
	{
		Type:     "Smart City / Utility",
		Subtypes: []string{"Smart Metering", "Waste Management", "Street Lighting", "Environmental Sensing", "Parking", "Other"},
	},
	{
		Type:     "Other Application",
		Subtypes: []string{"Please specify in Additional Details"},
	},
}

var DeploymentScales = []string{
	"Proof of Concept (< 5 devices)",
	"Pilot (5-20 devices)",
	"Small Scale (21-100 devices)",
	"Medium Scale (101-500 devices)",
	"Large Scale (501-2000 devices)",
	"Very Large Scale (2000+ devices)",
	"Unsure / TBD",
}

var PowerOptions = []string{
	"Battery Powered (Primary)",
	"Solar Powered (with Battery Backup)",
	"Mains Powered (AC/DC)",
	"Power over Ethernet (PoE)",
	"Energy Harvesting (Specify in details)",
	"Mix of sources",
	"Unsure / TBD",
}

var ConnectivityOptions = []string{
	"Cellular (LTE-M/NB-IoT)",
	"Cellular (4G/5G)",
	"Wi-Fi",
	"Ethernet",
	"Bluetooth (BLE)",
	"Other (Specify in details)",
}

var NetworkTypes = []string{"Public", "Private"}

// RegionByName resolves a selectable region together with its frequency band.
func RegionByName(name string) (Region, bool) {
	for _, region := range Regions {
		if region.Name == name {
			return region, true
		}
	}
	return Region{}, false
}

// SubtypesFor returns the selectable subtypes of an application type.
func SubtypesFor(applicationType string) ([]string, bool) {
	for _, info := range ApplicationTypes {
		if info.Type == applicationType {
			return info.Subtypes, true
		}
	}
	return nil, false
}
