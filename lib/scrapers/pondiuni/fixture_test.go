package pondiuni

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, raw string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

// profileHTML mimics the establishment portal's faculty page markup:
// bootstrap-style titled panels, inconsistent serial-number columns and
// the occasional header row leaking into the table body.
const profileHTML = `<!DOCTYPE html>
<html><head><title>Faculty Profile</title></head><body>
<img src="/sites/default/files/logo.png">
<h1 class="page-title">Dr. R. Subramanian</h1>
<div class="content">
<img src="/sites/default/files/faculty/rsubramanian.jpg">
<table class="profile-info">
<tr><td>Designation</td><td>Professor</td></tr>
<tr><td>Department</td><td>Computer Science</td></tr>
<tr><td>School</td><td>School of Engineering and Technology</td></tr>
<tr><td>Specialization</td><td>Data Mining, Machine Learning, Soft Computing.</td></tr>
<tr><td>Areas of Research</td><td>Deep Learning, Text Mining</td></tr>
</table>
<p>Contact: <a href="mailto:rsubramanian@pondiuni.ac.in">rsubramanian@pondiuni.ac.in</a></p>

<div class="panel"><div class="panel-heading">Educational Qualification</div>
<table>
<tr><th>S.No</th><th>Degree</th><th>Title of Degree</th><th>University</th><th>Year of Graduation</th></tr>
<tr><td>1</td><td>Ph.D</td><td>Computer Science</td><td>Pondicherry University</td><td>2005</td></tr>
<tr><td>2</td><td>M.Tech</td><td>Computer Science and Engineering</td><td>Anna University</td><td>1999</td></tr>
<tr><td>Degree</td><td>Title of Degree</td><td>University</td><td>Year of Graduation</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Honours and Awards</div>
<table>
<tr><th>Title of Award</th><th>Type</th><th>Awarding Agency</th><th>Year</th><th>Amount</th></tr>
<tr><td>Best Teacher Award</td><td>State</td><td>Govt. of Puducherry</td><td>2018</td><td>-</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Teaching Experience</div>
<table>
<tr><th>Designation</th><th>Department</th><th>Institution</th><th>Duration</th></tr>
<tr><td>Professor</td><td>Computer Science</td><td>Pondicherry University</td><td>2012 - till date</td></tr>
<tr><td>Associate Professor</td><td>Computer Science</td><td>Pondicherry University</td><td>2006 - 2012</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Research Experience</div>
<table>
<tr><th>Designation</th><th>Department</th><th>Institution</th><th>Duration</th><th>Area of Research</th></tr>
<tr><td>Research Associate</td><td>CSE</td><td>IIT Madras</td><td>2004 - 2006</td><td>Data Mining</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Industrial Experience</div>
<table>
<tr><th>Company</th><th>Designation</th><th>Nature of Work</th><th>Duration</th></tr>
<tr><td>Infosys Ltd.</td><td>Software Engineer</td><td>Application Development</td><td>1999 - 2001</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Innovative Works</div>
<table>
<tr><th>Name of the Work</th><th>Specialization</th><th>Remarks</th></tr>
<tr><td>Adaptive Learning Portal</td><td>E-Learning</td><td>Deployed campus-wide</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Patents</div>
<table>
<tr><th>S.No</th><th>Title</th><th>Status</th><th>Patent Number</th><th>Year of Award</th><th>Type</th><th>Commercialized Status</th></tr>
<tr><td>1</td><td>Method for Stream Clustering</td><td>Granted</td><td>IN345678</td><td>2020</td><td>National</td><td>No</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Publications in UGC Listed Journals</div>
<table>
<tr><th>S.No</th><th>Title of the Paper</th><th>Authors</th><th>Name of the Journal</th><th>Vol., Issue &amp; Page Nos.</th><th>Year</th><th>Impact Factor</th></tr>
<tr><td>1</td><td>Outlier Detection in Data Streams</td><td>R. Subramanian, K. Priya</td><td>Knowledge and Information Systems</td><td>42(3), 521-544</td><td>2019</td><td>2.94</td></tr>
<tr><td>2</td><td>Scalable Text Clustering</td><td>R. Subramanian</td><td>Pattern Recognition Letters</td><td>118, 12-20</td><td>2018</td><td>3.25</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Other Journal Publications</div>
<table>
<tr><th>S.No</th><th>Title of the Paper</th><th>Authors</th><th>Name of the Journal</th><th>Vol., Issue &amp; Page Nos.</th><th>Year</th><th>Impact Factor</th></tr>
<tr><td>1</td><td>A Survey of Soft Computing Methods</td><td>R. Subramanian, M. Anand</td><td>National Journal of Computing</td><td>7(1), 33-41</td><td>2016</td><td>-</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Papers Presented in Conferences</div>
<table>
<tr><th>S.No</th><th>Title of the Paper</th><th>Authors</th><th>Conference Details</th><th>Page Nos.</th><th>Year</th></tr>
<tr><td>1</td><td>Incremental Clustering at Scale</td><td>R. Subramanian</td><td>ICDM 2017, New Orleans</td><td>112-119</td><td>2017</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Books Published</div>
<table>
<tr><th>S.No</th><th>Title of the Book</th><th>Authors</th><th>Publisher</th><th>Year</th><th>ISBN</th></tr>
<tr><td>1</td><td>Advanced Data Mining</td><td>R. Subramanian</td><td>Springer</td><td>2015</td><td>978-81-203-1234-5</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Books Edited</div>
<table>
<tr><th>Title of the Book Edited</th><th>Editors</th><th>Publisher</th><th>Year</th><th>ISBN</th></tr>
<tr><td>Trends in Computing</td><td>R. Subramanian, V. Kumar</td><td>Narosa</td><td>2013</td><td>978-81-7319-555-2</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Sponsored Research Projects</div>
<table>
<tr><th>S.No</th><th>Title of the Project</th><th>Sponsored By</th><th>Period</th><th>Amount Sanctioned</th><th>Year</th></tr>
<tr><td>1</td><td>Mining Social Media Streams</td><td>DST</td><td>3 years</td><td>24.5 Lakhs</td><td>2019</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Consultancy Services</div>
<table>
<tr><th>Title of the Consultancy</th><th>Client</th><th>Period</th><th>Amount</th><th>Year</th></tr>
<tr><td>Library Automation Review</td><td>Puducherry Govt.</td><td>6 months</td><td>2 Lakhs</td><td>2021</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">PG Projects Guided</div>
<table>
<tr><th>Year</th><th>Degree</th><th>No. of Students Awarded</th><th>Department</th></tr>
<tr><td>2019</td><td>M.Tech</td><td>4</td><td>Computer Science</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Ph.D Guidance</div>
<table>
<tr><th>S.No</th><th>Name of the Student</th><th>Date of Registration</th><th>Registration No.</th><th>Title of the Thesis</th><th>Thesis Submitted</th><th>Date of Submission</th><th>Viva-Voce Completed</th><th>Date Awarded</th></tr>
<tr><td>1</td><td>K. Priya</td><td>12/07/2016</td><td>PU2016CS014</td><td>Stream Outlier Detection</td><td>Yes</td><td>03/01/2021</td><td>Yes</td><td>28/06/2021</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Post Doctoral Fellows</div>
<table>
<tr><th>Name of the Scholar</th><th>Designation</th><th>Funding Agency</th><th>Title of Fellowship</th><th>Year of Joining</th><th>Year of Completion</th></tr>
<tr><td>M. Anand</td><td>PDF</td><td>UGC</td><td>Dr. D.S. Kothari Fellowship</td><td>2019</td><td>2021</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Invited Talks Delivered</div>
<table>
<tr><th>S.No</th><th>Title of the Talk</th><th>Date(s)</th><th>Level</th><th>Venue</th><th>Organized By</th></tr>
<tr><td>1</td><td>Mining Massive Data</td><td>14/02/2020</td><td>National</td><td>NIT Trichy</td><td>CSE Department</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Faculty Development Programmes Attended</div>
<table>
<tr><th>S.No</th><th>Title of the Programme</th><th>Dates</th><th>Venue</th><th>Participants</th><th>Role</th></tr>
<tr><td>1</td><td>Refresher Course in Computer Science</td><td>01/06/2018 - 21/06/2018</td><td>Pondicherry University</td><td>35</td><td>Participant</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Academic Administration</div>
<table>
<tr><th>Position Held</th><th>Period</th><th>Details</th></tr>
<tr><td>Head of the Department</td><td>2016 - 2019</td><td>Department of Computer Science</td></tr>
</table></div>

<div class="panel"><div class="panel-heading">Institutional Collaborations</div>
<table>
<tr><th>Title</th><th>Period</th><th>Institution</th><th>Nature of Collaboration</th><th>Details</th></tr>
<tr><td>MoU with IIT Madras</td><td>2019 - 2024</td><td>IIT Madras</td><td>Joint Research</td><td>Student exchange</td></tr>
</table></div>

</div>
</body></html>`
