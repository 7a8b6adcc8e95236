package lanetopo

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ExportToCSV writes '<name>_lanes.csv' and '<name>_intersections.csv' files
func (topology *Topology) ExportToCSV(fname string) error {

	fnameParts := strings.Split(fname, ".csv")
	fnameLanes := fnameParts[0] + "_lanes.csv"
	fnameIntersections := fnameParts[0] + "_intersections.csv"

	err := topology.exportLanesToCSV(fnameLanes)
	if err != nil {
		return errors.Wrap(err, "Can't export lanes")
	}

	err = topology.exportIntersectionsToCSV(fnameIntersections)
	if err != nil {
		return errors.Wrap(err, "Can't export intersections")
	}
	return nil
}

func (topology *Topology) exportLanesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "is_traffic", "speed", "points_num", "straight_length", "length", "next_lanes", "stop_line", "section", "left_lane", "right_lane", "turn_type", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, lane := range topology.Network {
		err = writer.Write([]string{
			string(lane.ID),
			fmt.Sprintf("%t", lane.IsTrafficLane),
			fmt.Sprintf("%f", lane.Speed),
			fmt.Sprintf("%d", len(lane.WorldPositions)),
			fmt.Sprintf("%f", lane.StraightLength()),
			fmt.Sprintf("%f", lane.Length()),
			strings.Join(laneIDs(lane.NextConnectedLanes), ","),
			lineID(lane.StopLine),
			sectionID(lane.Section),
			laneID(lane.LeftLane),
			laneID(lane.RightLane),
			lane.TurnType.String(),
			PrepareWKTLinestring(lane.WorldPositions),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write lane")
		}
	}
	return nil
}

func (topology *Topology) exportIntersectionsToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "lanes", "stop_lines", "conflicts_num", "elevation", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, intersection := range topology.Intersections {
		stopLines := make([]string, len(intersection.StopLines))
		for i, line := range intersection.StopLines {
			stopLines[i] = string(line.ID)
		}
		conflicts := 0
		for _, other := range intersection.Conflicts {
			conflicts += len(other)
		}
		err = writer.Write([]string{
			string(intersection.ID),
			strings.Join(laneIDs(intersection.Lanes), ","),
			strings.Join(stopLines, ","),
			fmt.Sprintf("%d", conflicts/2),
			fmt.Sprintf("%f", intersection.Center.Y),
			PrepareWKTPoint(intersection.Center),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write intersection")
		}
	}
	return nil
}

func laneID(lane *MapLane) string {
	if lane == nil {
		return ""
	}
	return string(lane.ID)
}

func lineID(line *MapLine) string {
	if line == nil {
		return ""
	}
	return string(line.ID)
}

func sectionID(section *MapLaneSection) string {
	if section == nil {
		return ""
	}
	return string(section.ID)
}
